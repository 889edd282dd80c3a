package audit

import (
	"context"
	"time"
)

type AuditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type actorContextKey struct{}

func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(actorContextKey{}).(string)
	return actor
}

// Entry is the shape of one audit record.
type Entry struct {
	Action    string      `json:"action"`
	Actor     string      `json:"actor,omitempty"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

type NoopLogger struct{}

func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (*NoopLogger) Log(context.Context, string, interface{}) error {
	return nil
}
