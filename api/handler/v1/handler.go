package v1

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goto/remark/core/comment"
	"github.com/goto/remark/domain"
	"github.com/goto/remark/pkg/log"
)

const (
	CodeEmptyBody          = "EMPTY_BODY"
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeUnknownParentType  = "UNKNOWN_PARENT_TYPE"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeParentNotFound     = "PARENT_NOT_FOUND"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeTimeout            = "TIMEOUT"
	CodeInternal           = "INTERNAL"

	HeaderAdminAPIKey    = "X-Admin-Api-Key"
	HeaderRequestTimeout = "X-Request-Timeout"

	defaultAuthHeaderKey = "Authorization"
)

//go:generate mockery --name=commentService --exported --with-expecter
type commentService interface {
	Create(context.Context, comment.CreateCommentParams) (*domain.Comment, error)
	List(context.Context, domain.ListCommentsFilter) ([]*domain.Comment, error)
	DeleteThread(context.Context, domain.ParentReference) error
}

type Handler struct {
	commentService commentService
	logger         log.Logger

	authHeaderKey     string
	adminAPIKey       string
	maxRequestTimeout time.Duration
}

type HandlerOptions struct {
	// AuthHeaderKey carries the caller token. For Authorization the Bearer
	// scheme is stripped.
	AuthHeaderKey string
	// AdminAPIKey guards the thread deletion route. Empty disables the route.
	AdminAPIKey string
	// MaxRequestTimeout caps the X-Request-Timeout header.
	MaxRequestTimeout time.Duration
}

func NewHandler(commentService commentService, logger log.Logger, opts HandlerOptions) *Handler {
	if logger == nil {
		logger = log.NewNoop()
	}
	if opts.AuthHeaderKey == "" {
		opts.AuthHeaderKey = defaultAuthHeaderKey
	}
	return &Handler{
		commentService:    commentService,
		logger:            logger,
		authHeaderKey:     opts.AuthHeaderKey,
		adminAPIKey:       opts.AdminAPIKey,
		maxRequestTimeout: opts.MaxRequestTimeout,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/ping", h.Ping)

	v1 := r.Group("/api/v1", h.RequestTimeout())
	{
		v1.POST("/comments", h.CreateComment)
		v1.GET("/comments", h.ListComments)
		v1.DELETE("/comments", h.RequireAdminAPIKey(), h.DeleteThread)
	}

	// routes used by the existing question page
	compat := r.Group("/api/questions", h.RequestTimeout())
	{
		compat.POST("/save_comment", h.CreateComment)
		compat.GET("/get/all/comments", h.ListComments)
	}
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RequestTimeout applies the X-Request-Timeout header, capped by the
// configured maximum, to the request context.
func (h *Handler) RequestTimeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderRequestTimeout)
		if raw == "" {
			c.Next()
			return
		}

		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			h.abort(c, http.StatusBadRequest, CodeInvalidArgument, "invalid "+HeaderRequestTimeout+" header")
			return
		}
		if h.maxRequestTimeout > 0 && timeout > h.maxRequestTimeout {
			timeout = h.maxRequestTimeout
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (h *Handler) RequireAdminAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.adminAPIKey == "" {
			h.abort(c, http.StatusServiceUnavailable, CodeInternal, "admin API not configured")
			return
		}
		if c.GetHeader(HeaderAdminAPIKey) != h.adminAPIKey {
			h.abort(c, http.StatusUnauthorized, CodeUnauthenticated, "invalid or missing admin API key")
			return
		}
		c.Next()
	}
}

func (h *Handler) callerToken(c *gin.Context) string {
	v := strings.TrimSpace(c.GetHeader(h.authHeaderKey))
	if strings.EqualFold(h.authHeaderKey, defaultAuthHeaderKey) {
		if len(v) > 7 && strings.EqualFold(v[:7], "Bearer ") {
			return strings.TrimSpace(v[7:])
		}
		return ""
	}
	return v
}

func (h *Handler) writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, comment.ErrEmptyBody):
		h.abort(c, http.StatusBadRequest, CodeEmptyBody, err.Error())
	case errors.Is(err, comment.ErrEmptyParentID):
		h.abort(c, http.StatusBadRequest, CodeInvalidArgument, err.Error())
	case errors.Is(err, comment.ErrUnknownParentType):
		h.abort(c, http.StatusBadRequest, CodeUnknownParentType, err.Error())
	case errors.Is(err, comment.ErrUnauthenticatedCaller):
		h.abort(c, http.StatusUnauthorized, CodeUnauthenticated, comment.ErrUnauthenticatedCaller.Error())
	case errors.Is(err, comment.ErrParentNotFound):
		h.abort(c, http.StatusNotFound, CodeParentNotFound, err.Error())
	case errors.Is(err, comment.ErrOperationTimedOut), errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn(ctx, "comment operation timed out", "error", err)
		h.abort(c, http.StatusGatewayTimeout, CodeTimeout, comment.ErrOperationTimedOut.Error())
	case errors.Is(err, comment.ErrStorageUnavailable):
		h.logger.Error(ctx, "comment storage unavailable", "error", err)
		h.abort(c, http.StatusServiceUnavailable, CodeStorageUnavailable, comment.ErrStorageUnavailable.Error())
	default:
		h.logger.Error(ctx, "unexpected error", "error", err)
		h.abort(c, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}

func (h *Handler) abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Code: code, Error: message})
}
