package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStreamLogger appends audit entries to a redis stream, trimmed to
// roughly MaxLen entries.
type RedisStreamLogger struct {
	client redis.UniversalClient
	stream string
	maxLen int64
	now    func() time.Time
}

func NewRedisStreamLogger(client redis.UniversalClient, stream string, maxLen int64) *RedisStreamLogger {
	return &RedisStreamLogger{
		client: client,
		stream: stream,
		maxLen: maxLen,
		now:    time.Now,
	}
}

func (l *RedisStreamLogger) Log(ctx context.Context, action string, data interface{}) error {
	entry := Entry{
		Action:    action,
		Actor:     ActorFromContext(ctx),
		Data:      data,
		Timestamp: l.now().UTC(),
	}
	payload, err := json.Marshal(entry.Data)
	if err != nil {
		return fmt.Errorf("encoding audit data: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: l.stream,
		Values: map[string]any{
			"action":    entry.Action,
			"actor":     entry.Actor,
			"data":      string(payload),
			"timestamp": entry.Timestamp.Format(time.RFC3339Nano),
		},
	}
	if l.maxLen > 0 {
		args.MaxLen = l.maxLen
		args.Approx = true
	}
	if err := l.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}
