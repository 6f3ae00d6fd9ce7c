package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Clare-zewei/clickengineA-sub000/docs"
	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
	"github.com/Clare-zewei/clickengineA-sub000/internal/service"
)

// Services groups the services behind the HTTP API
type Services struct {
	Templates   service.TemplateServicer
	Performance service.PerformanceServicer
	Keywords    service.KeywordServicer
	Catalog     service.CatalogServicer
}

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

type Handler struct {
	services     Services
	router       *gin.Engine
	log          *zap.Logger
	middleware   []gin.HandlerFunc
	writeLimiter gin.HandlerFunc
	metrics      http.Handler
	checks       map[string]HealthCheck
}

// Option configures optional parts of the Handler
type Option func(*Handler)

// WithMiddleware adds middleware that runs on every route
func WithMiddleware(mw ...gin.HandlerFunc) Option {
	return func(h *Handler) {
		h.middleware = append(h.middleware, mw...)
	}
}

// WithWriteLimiter rate limits POST, PUT and DELETE routes
func WithWriteLimiter(mw gin.HandlerFunc) Option {
	return func(h *Handler) {
		h.writeLimiter = mw
	}
}

// WithMetricsHandler serves Prometheus metrics on /metrics
func WithMetricsHandler(metrics http.Handler) Option {
	return func(h *Handler) {
		h.metrics = metrics
	}
}

// WithHealthCheck adds a dependency check to /health
func WithHealthCheck(name string, check HealthCheck) Option {
	return func(h *Handler) {
		h.checks[name] = check
	}
}

func NewHandler(services Services, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		router:   gin.New(),
		log:      log,
		checks:   make(map[string]HealthCheck),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.router.Use(h.middleware...)
	h.router.Use(gin.Recovery())
	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	write := []gin.HandlerFunc{}
	if h.writeLimiter != nil {
		write = append(write, h.writeLimiter)
	}
	writes := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, write...), handler)
	}

	h.router.GET("/health", h.healthCheck)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.metrics != nil {
		h.router.GET("/metrics", gin.WrapH(h.metrics))
	}

	h.router.GET("/events", h.listEvents)
	h.router.POST("/events/custom", writes(h.createCustomEvent)...)

	templates := h.router.Group("/funnel-templates")
	templates.GET("", h.listTemplates)
	templates.POST("", writes(h.createTemplate)...)
	templates.POST("/preview", h.previewTemplate)
	templates.GET("/:id", h.getTemplate)
	templates.PUT("/:id", writes(h.updateTemplate)...)
	templates.DELETE("/:id", writes(h.deleteTemplate)...)
	templates.GET("/:id/performance", h.getPerformance)
	templates.POST("/:id/performance", writes(h.syncPerformance)...)
	templates.GET("/:id/performance/history", h.getPerformanceHistory)

	keywords := h.router.Group("/steps/:stepId/keywords")
	keywords.GET("", h.listKeywords)
	keywords.POST("", writes(h.addKeywords)...)
	keywords.GET("/usage", h.keywordUsageLog)
	keywords.PUT("/:keywordId", writes(h.updateKeyword)...)
	keywords.DELETE("/:keywordId", writes(h.removeKeyword)...)
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	failed := make(map[string]string)
	for name, check := range h.checks {
		if err := check(c.Request.Context()); err != nil {
			h.log.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			failed[name] = err.Error()
		}
	}

	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"checks": failed,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// badRequest reports a request that could not be bound
func (h *Handler) badRequest(c *gin.Context, err error, msg string) {
	h.log.Warn(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}

// respondError maps service errors onto status codes
func (h *Handler) respondError(c *gin.Context, err error, msg string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		h.log.Warn(msg, zap.Strings("errors", verr.Errors))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   "validation_error",
			Message: msg,
			Errors:  verr.Errors,
		})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		})
	default:
		h.log.Error(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
