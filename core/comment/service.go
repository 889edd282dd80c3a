package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/goto/remark/domain"
	"github.com/goto/remark/pkg/audit"
	"github.com/goto/remark/pkg/identity"
	"github.com/goto/remark/pkg/log"
)

const (
	AuditKeyCreate       = "comment.create"
	AuditKeyDeleteThread = "comment.deleteThread"

	DefaultTimeout = 10 * time.Second

	instrumentationName = "github.com/goto/remark/core/comment"
)

//go:generate mockery --name=repository --exported --with-expecter
type repository interface {
	Append(context.Context, *domain.Comment) error
	QueryByParent(context.Context, domain.ParentReference) ([]*domain.Comment, error)
	DeleteAllForParent(context.Context, domain.ParentReference) error
}

//go:generate mockery --name=identityResolver --exported --with-expecter
type identityResolver interface {
	ResolveCaller(ctx context.Context, token string) (*domain.Caller, error)
}

//go:generate mockery --name=auditLogger --exported --with-expecter
type auditLogger interface {
	Log(ctx context.Context, action string, data interface{}) error
}

type Service struct {
	repo             repository
	registry         *ParentRegistry
	identityResolver identityResolver

	logger      log.Logger
	auditLogger auditLogger

	enforceParentExists bool
	defaultTimeout      time.Duration
	createdCounter      metric.Int64Counter
}

type ServiceDeps struct {
	Repository       repository
	Registry         *ParentRegistry
	IdentityResolver identityResolver

	Logger      log.Logger
	AuditLogger auditLogger

	// EnforceParentExists rejects comments on parents their validator can't find.
	EnforceParentExists bool
	// DefaultTimeout applies to calls whose context carries no deadline.
	DefaultTimeout time.Duration
}

func NewService(deps ServiceDeps) *Service {
	registry := deps.Registry
	if registry == nil {
		registry = NewParentRegistry()
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.NewNoop()
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"remark.comments.created",
		metric.WithDescription("Number of comments created"),
	)
	if err != nil {
		otel.Handle(err)
		counter = noop.Int64Counter{}
	}

	return &Service{
		repo:                deps.Repository,
		registry:            registry,
		identityResolver:    deps.IdentityResolver,
		logger:              logger,
		auditLogger:         deps.AuditLogger,
		enforceParentExists: deps.EnforceParentExists,
		defaultTimeout:      deps.DefaultTimeout,
		createdCounter:      counter,
	}
}

type CreateCommentParams struct {
	ParentType string
	ParentID   string
	Body       string
	// Caller is the opaque token handed over by the authentication layer.
	Caller string
}

// Create validates and durably stores exactly one comment. The returned
// comment carries the id and timestamp assigned by the store.
func (s *Service) Create(ctx context.Context, p CreateCommentParams) (*domain.Comment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	validator, err := s.lookupParentType(p.ParentType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Body) == "" {
		return nil, ErrEmptyBody
	}
	if p.ParentID == "" {
		return nil, ErrEmptyParentID
	}

	caller, err := s.resolveCaller(ctx, p.Caller)
	if err != nil {
		return nil, err
	}

	if s.enforceParentExists && validator != nil {
		exists, err := validator.Exists(ctx, p.ParentID)
		if err != nil {
			if isDeadline(ctx, err) {
				return nil, fmt.Errorf("%w: %w", ErrOperationTimedOut, err)
			}
			return nil, fmt.Errorf("checking %s %q: %w", p.ParentType, p.ParentID, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s %q", ErrParentNotFound, p.ParentType, p.ParentID)
		}
	}

	c := &domain.Comment{
		ParentType:    p.ParentType,
		ParentID:      p.ParentID,
		Body:          p.Body,
		CreatedBy:     caller.ID,
		CreatedByName: caller.DisplayName,
	}
	if c.CreatedByName == "" {
		c.CreatedByName = caller.ID
	}

	if err := s.repo.Append(ctx, c); err != nil {
		return nil, storeError(ctx, err)
	}
	s.logger.Debug(ctx, "comment created", "comment_id", c.ID, "parent", c.Parent().String())
	s.createdCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("parent_type", c.ParentType)))

	if s.auditLogger != nil {
		created := *c
		go func() {
			ctx := audit.WithActor(context.WithoutCancel(ctx), created.CreatedBy)
			if err := s.auditLogger.Log(ctx, AuditKeyCreate, created); err != nil {
				s.logger.Error(ctx, "failed to record audit log", "error", err, "parent", created.Parent().String(), "comment_id", created.ID)
			}
		}()
	}

	return c, nil
}

// List returns the thread of one parent in (created_at, id) order. Every call
// re-reads the store.
func (s *Service) List(ctx context.Context, filter domain.ListCommentsFilter) ([]*domain.Comment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.lookupParentType(filter.ParentType); err != nil {
		return nil, err
	}
	if filter.ParentID == "" {
		return nil, ErrEmptyParentID
	}

	comments, err := s.repo.QueryByParent(ctx, filter.Parent())
	if err != nil {
		return nil, storeError(ctx, err)
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}

// DeleteThread removes every comment of a parent. It exists for the parent's
// own lifecycle manager and is never called by Create or List.
func (s *Service) DeleteThread(ctx context.Context, parent domain.ParentReference) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.lookupParentType(parent.Type); err != nil {
		return err
	}
	if parent.ID == "" {
		return ErrEmptyParentID
	}

	if err := s.repo.DeleteAllForParent(ctx, parent); err != nil {
		return storeError(ctx, err)
	}
	s.logger.Info(ctx, "comment thread deleted", "parent", parent.String())

	if s.auditLogger != nil {
		go func() {
			ctx := context.WithoutCancel(ctx)
			if err := s.auditLogger.Log(ctx, AuditKeyDeleteThread, parent); err != nil {
				s.logger.Error(ctx, "failed to record audit log", "error", err, "parent", parent.String())
			}
		}()
	}
	return nil
}

// ParentTypes lists the registered parent type tags.
func (s *Service) ParentTypes() []string {
	return s.registry.Types()
}

func (s *Service) lookupParentType(parentType string) (ParentValidator, error) {
	v, ok := s.registry.Lookup(parentType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParentType, parentType)
	}
	return v, nil
}

func (s *Service) resolveCaller(ctx context.Context, token string) (*domain.Caller, error) {
	if token == "" || s.identityResolver == nil {
		return nil, ErrUnauthenticatedCaller
	}

	caller, err := s.identityResolver.ResolveCaller(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidToken):
			return nil, fmt.Errorf("%w: %w", ErrUnauthenticatedCaller, err)
		case isDeadline(ctx, err):
			return nil, fmt.Errorf("%w: %w", ErrOperationTimedOut, err)
		default:
			return nil, fmt.Errorf("resolving caller: %w", err)
		}
	}
	if caller == nil || caller.ID == "" {
		return nil, ErrUnauthenticatedCaller
	}
	return caller, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || s.defaultTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.defaultTimeout)
}

func storeError(ctx context.Context, err error) error {
	switch {
	case isDeadline(ctx, err):
		return fmt.Errorf("%w: %w", ErrOperationTimedOut, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
}

func isDeadline(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}
