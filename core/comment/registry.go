package comment

import (
	"context"
	"fmt"
	"sync"

	"github.com/goto/remark/pkg/slices"
)

// ParentValidator reports whether a parent entity of one registered type
// exists.
//
//go:generate mockery --name=ParentValidator --exported --with-expecter
type ParentValidator interface {
	Exists(ctx context.Context, parentID string) (bool, error)
}

// ParentRegistry maps parent type tags to their validators. A tag registered
// with a nil validator accepts any parent id.
type ParentRegistry struct {
	mu         sync.RWMutex
	validators map[string]ParentValidator
}

func NewParentRegistry() *ParentRegistry {
	return &ParentRegistry{validators: map[string]ParentValidator{}}
}

func (r *ParentRegistry) Register(parentType string, v ParentValidator) error {
	if parentType == "" {
		return ErrEmptyParentType
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.validators[parentType]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateParentType, parentType)
	}
	r.validators[parentType] = v
	return nil
}

func (r *ParentRegistry) Lookup(parentType string) (ParentValidator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[parentType]
	return v, ok
}

func (r *ParentRegistry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.validators))
	for t := range r.validators {
		types = append(types, t)
	}
	return slices.GenericsStandardizeSlice(types)
}
