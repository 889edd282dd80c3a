package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goto/remark/domain"
)

type Claims struct {
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTResolver verifies HMAC signed tokens. The subject claim becomes the
// caller id and the first non-empty of name, username and email its display
// name.
type JWTResolver struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTResolver(secret string, issuer string) (*JWTResolver, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: jwt secret can't be empty", ErrInvalidConfig)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &JWTResolver{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}, nil
}

func (r *JWTResolver) ResolveCaller(_ context.Context, token string) (*domain.Caller, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrEmptyToken)
	}

	claims := &Claims{}
	_, err := r.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return r.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token has expired", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &domain.Caller{
		ID:          claims.Subject,
		DisplayName: firstNonEmpty(claims.Name, claims.Username, claims.Email),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
