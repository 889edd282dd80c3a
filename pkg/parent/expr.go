package parent

import (
	"context"
	"fmt"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"
)

type ExprConfig struct {
	// Expression is evaluated with `id` bound to the parent id and must
	// return a bool, e.g. `id matches "^[a-f0-9]{24}$"`.
	Expression string `mapstructure:"expression"`
}

// ExprValidator decides existence from the shape of the id alone.
type ExprValidator struct {
	program *vm.Program
}

func NewExprValidator(cfg ExprConfig) (*ExprValidator, error) {
	if cfg.Expression == "" {
		return nil, fmt.Errorf("%w: expression can't be empty", ErrInvalidValidatorConfig)
	}
	program, err := expr.Compile(cfg.Expression, expr.Env(exprEnv("")), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: compiling expression: %w", ErrInvalidValidatorConfig, err)
	}
	return &ExprValidator{program: program}, nil
}

func (v *ExprValidator) Exists(_ context.Context, parentID string) (bool, error) {
	out, err := expr.Run(v.program, exprEnv(parentID))
	if err != nil {
		return false, fmt.Errorf("evaluating expression: %w", err)
	}
	return out.(bool), nil
}

func exprEnv(id string) map[string]interface{} {
	return map[string]interface{}{"id": id}
}
