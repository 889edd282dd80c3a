package identity

import (
	"context"
	"fmt"

	"github.com/goto/remark/domain"
)

// StaticResolver resolves tokens from a fixed table. Meant for local setups
// and tests.
type StaticResolver struct {
	callers map[string]domain.Caller
}

func NewStaticResolver(callers map[string]domain.Caller) *StaticResolver {
	table := make(map[string]domain.Caller, len(callers))
	for token, c := range callers {
		table[token] = c
	}
	return &StaticResolver{callers: table}
}

func (r *StaticResolver) ResolveCaller(_ context.Context, token string) (*domain.Caller, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrEmptyToken)
	}
	c, ok := r.callers[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	return &c, nil
}
