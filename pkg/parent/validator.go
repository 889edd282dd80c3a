package parent

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
)

const (
	ValidatorTypeNone = "none"
	ValidatorTypeHTTP = "http"
	ValidatorTypeExpr = "expr"
)

var ErrInvalidValidatorConfig = errors.New("invalid parent validator config")

// Validator reports whether the parent entity with the given id exists.
type Validator interface {
	Exists(ctx context.Context, parentID string) (bool, error)
}

type Config struct {
	Type   string                 `mapstructure:"type" yaml:"type" default:"none" validate:"oneof=none http expr"`
	Config map[string]interface{} `mapstructure:"config" yaml:"config"`
}

// New builds the validator described by cfg. A nil validator with a nil error
// means the parent type accepts any id.
func New(cfg Config, client *http.Client) (Validator, error) {
	switch cfg.Type {
	case "", ValidatorTypeNone:
		return nil, nil
	case ValidatorTypeHTTP:
		var c HTTPConfig
		if err := decode(cfg.Config, &c); err != nil {
			return nil, err
		}
		return NewHTTPValidator(c, client)
	case ValidatorTypeExpr:
		var c ExprConfig
		if err := decode(cfg.Config, &c); err != nil {
			return nil, err
		}
		return NewExprValidator(c)
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidValidatorConfig, cfg.Type)
	}
}

func decode(input map[string]interface{}, target interface{}) error {
	if err := mapstructure.Decode(input, target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValidatorConfig, err)
	}
	return nil
}
