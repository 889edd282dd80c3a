package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/sync/errgroup"

	v1 "github.com/goto/remark/api/handler/v1"
	"github.com/goto/remark/pkg/log"
	"github.com/goto/remark/pkg/opentelemetry"
)

const (
	shutdownTimeout = 10 * time.Second
)

// RunServer serves the comment API until SIGINT or SIGTERM.
func RunServer(cfg *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.NewCtxLogger(cfg.LogLevel, cfg.LogFormat, LogKeyRequestID)

	if cfg.Telemetry.Enabled {
		shutdownTelemetry, err := opentelemetry.Init(ctx, cfg.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		defer func() {
			if err := shutdownTelemetry(); err != nil {
				logger.Error(ctx, "failed to shut down telemetry", "error", err)
			}
		}()
	}

	services, cleanup, err := InitServices(ctx, ServiceDeps{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}
	defer cleanup()

	gin.SetMode(gin.ReleaseMode)
	router := NewRouter(cfg, services, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(gctx, "server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info(context.Background(), "shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serving http: %w", err)
	}
	logger.Info(context.Background(), "server stopped")
	return nil
}

// NewRouter builds the gin engine carrying every route and middleware.
func NewRouter(cfg *Config, services *Services, logger log.Logger) *gin.Engine {
	router := gin.New()
	if cfg.Telemetry.Enabled {
		router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	router.Use(requestID(), recovery(logger), accessLogger(logger))

	handler := v1.NewHandler(services.CommentService, logger, v1.HandlerOptions{
		AuthHeaderKey:     cfg.Auth.HeaderKey,
		AdminAPIKey:       cfg.AdminAPIKey,
		MaxRequestTimeout: cfg.Comments.MaxRequestTimeout,
	})
	handler.RegisterRoutes(router)

	return router
}
