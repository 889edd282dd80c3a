package identity

import (
	"context"
	"errors"

	"github.com/goto/remark/domain"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrEmptyToken    = errors.New("token can't be empty")
	ErrInvalidConfig = errors.New("invalid identity resolver config")
)

// Resolver turns an opaque caller token into an authenticated identity.
// Implementations return an error wrapping ErrInvalidToken when the token is
// rejected.
type Resolver interface {
	ResolveCaller(ctx context.Context, token string) (*domain.Caller, error)
}
