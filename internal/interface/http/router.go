package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/support-qa/internal/infra/config"
	"github.com/yanqian/support-qa/internal/infra/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
// collector may be nil when metrics are disabled.
func NewRouter(cfg *config.Config, handler *Handler, collector *metrics.Collector, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	logger = logger.With("component", "http.router")

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))
	if collector != nil {
		router.Use(requestMetrics(collector))
	}
	router.Use(corsMiddleware(cfg.HTTP.AllowedOrigins), errorHandlingMiddleware(logger))

	router.GET("/healthz", handler.Health)
	if collector != nil && cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(collector.Handler()))
	}

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(cfg.HTTP.RateLimit, logger))
	{
		api.POST("/faq/answer", handler.Answer)
		api.GET("/faq", handler.List)
		api.GET("/faq/search", handler.Search)
		api.POST("/tools/:name", handler.CallTool)
	}

	if cfg.Admin.Enabled {
		admin := api.Group("/admin", adminAuthMiddleware(cfg.Admin.Secret))
		{
			admin.GET("/kb", handler.KnowledgeBaseStatus)
			admin.POST("/kb/reload", handler.ReloadKnowledgeBase)
		}
	} else {
		logger.Info("admin routes disabled")
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
