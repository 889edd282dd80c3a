package server

import (
	"context"
	"fmt"
	"net/http"

	goredis "github.com/redis/go-redis/v9"

	"github.com/goto/remark/core/comment"
	"github.com/goto/remark/domain"
	"github.com/goto/remark/internal/store"
	"github.com/goto/remark/internal/store/memory"
	"github.com/goto/remark/internal/store/postgres"
	"github.com/goto/remark/internal/store/redis"
	pkghttp "github.com/goto/remark/pkg/http"
	"github.com/goto/remark/pkg/audit"
	"github.com/goto/remark/pkg/id"
	"github.com/goto/remark/pkg/identity"
	"github.com/goto/remark/pkg/log"
	"github.com/goto/remark/pkg/parent"
)

type ServiceDeps struct {
	Config *Config
	Logger log.Logger
}

type Services struct {
	CommentService *comment.Service
}

type commentRepository interface {
	Append(context.Context, *domain.Comment) error
	QueryByParent(context.Context, domain.ParentReference) ([]*domain.Comment, error)
	DeleteAllForParent(context.Context, domain.ParentReference) error
}

// InitServices builds the comment service and everything it depends on. The
// returned cleanup releases store connections and must be called once the
// services are no longer used.
func InitServices(ctx context.Context, deps ServiceDeps) (*Services, func(), error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = log.NewNoop()
	}

	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Error(ctx, "failed to release resource", "error", err)
			}
		}
	}
	fail := func(err error) (*Services, func(), error) {
		cleanup()
		return nil, func() {}, err
	}

	ids, err := id.NewGenerator(cfg.NodeID)
	if err != nil {
		return fail(fmt.Errorf("initializing id generator: %w", err))
	}

	var redisClient *goredis.Client
	getRedisClient := func() (*goredis.Client, error) {
		if redisClient != nil {
			return redisClient, nil
		}
		c, err := redis.NewClient(ctx, cfg.DB.Redis)
		if err != nil {
			return nil, err
		}
		redisClient = c
		closers = append(closers, c.Close)
		return c, nil
	}

	var repo commentRepository
	switch cfg.DB.Driver {
	case store.DriverMemory:
		logger.Warn(ctx, "using in-memory comment store, comments are lost on restart")
		repo = memory.NewCommentRepository(ids)
	case store.DriverRedis:
		client, err := getRedisClient()
		if err != nil {
			return fail(fmt.Errorf("connecting to redis: %w", err))
		}
		repo = redis.NewCommentRepository(client, ids, cfg.DB.Redis.KeyPrefix, cfg.DB.Redis.MaxRetries)
	case store.DriverPostgres, "":
		pg, err := postgres.NewStore(cfg.DB.Postgres)
		if err != nil {
			return fail(fmt.Errorf("connecting to postgres: %w", err))
		}
		closers = append(closers, pg.Close)
		repo = postgres.NewCommentRepository(pg.DB(), ids)
	default:
		return fail(fmt.Errorf("unknown store driver %q", cfg.DB.Driver))
	}

	outboundClient := pkghttp.NewClient("remark", cfg.OutboundHTTP)

	resolver, err := newIdentityResolver(cfg.Auth, outboundClient)
	if err != nil {
		return fail(fmt.Errorf("initializing identity resolver: %w", err))
	}

	registry, err := newParentRegistry(cfg.ParentTypes, outboundClient)
	if err != nil {
		return fail(err)
	}

	var auditLogger audit.AuditLogger = audit.NewNoopLogger()
	if cfg.Audit.Driver == AuditDriverRedis {
		client, err := getRedisClient()
		if err != nil {
			return fail(fmt.Errorf("connecting to redis: %w", err))
		}
		auditLogger = audit.NewRedisStreamLogger(client, cfg.Audit.Stream, cfg.Audit.MaxLen)
	}

	commentService := comment.NewService(comment.ServiceDeps{
		Repository:          repo,
		Registry:            registry,
		IdentityResolver:    resolver,
		Logger:              logger,
		AuditLogger:         auditLogger,
		EnforceParentExists: cfg.Comments.EnforceParentExists,
		DefaultTimeout:      cfg.Comments.DefaultTimeout,
	})

	return &Services{CommentService: commentService}, cleanup, nil
}

func newIdentityResolver(cfg Auth, client *http.Client) (identity.Resolver, error) {
	var resolver identity.Resolver
	switch cfg.Provider {
	case AuthProviderStatic, "":
		callers := make(map[string]domain.Caller, len(cfg.Static))
		for token, c := range cfg.Static {
			callers[token] = domain.Caller{ID: c.ID, DisplayName: c.Name}
		}
		resolver = identity.NewStaticResolver(callers)
	case AuthProviderJWT:
		r, err := identity.NewJWTResolver(cfg.JWT.Secret, cfg.JWT.Issuer)
		if err != nil {
			return nil, err
		}
		resolver = r
	case AuthProviderHTTP:
		r, err := identity.NewHTTPResolver(cfg.HTTP, client)
		if err != nil {
			return nil, err
		}
		resolver = r
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Provider)
	}

	if cfg.CacheTTL > 0 && cfg.Provider != AuthProviderStatic {
		resolver = identity.NewCachedResolver(resolver, cfg.CacheTTL)
	}
	return resolver, nil
}

func newParentRegistry(parentTypes []ParentType, client *http.Client) (*comment.ParentRegistry, error) {
	registry := comment.NewParentRegistry()
	for _, pt := range parentTypes {
		v, err := parent.New(pt.Validator, client)
		if err != nil {
			return nil, fmt.Errorf("parent type %q: %w", pt.Name, err)
		}
		var pv comment.ParentValidator
		if v != nil {
			pv = v
		}
		if err := registry.Register(pt.Name, pv); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
