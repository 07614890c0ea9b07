// Package api exposes the JSON API and wires the HTTP server.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/owais-io/sixer/internal/auth"
	"github.com/owais-io/sixer/internal/config"
	"github.com/owais-io/sixer/internal/ingest"
	"github.com/owais-io/sixer/internal/logger"
	"github.com/owais-io/sixer/internal/metrics"
	"github.com/owais-io/sixer/internal/query"
	"github.com/owais-io/sixer/internal/store"
	"github.com/owais-io/sixer/internal/web"
)

const serviceVersion = "1.0.0"

// Router holds the API dependencies
type Router struct {
	cfg        *config.Config
	store      *store.Store
	queries    *query.Service
	ingest     *ingest.Service
	authorizer *auth.Authorizer
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewRouter creates a new API router
func NewRouter(
	cfg *config.Config,
	contentStore *store.Store,
	queries *query.Service,
	ingestService *ingest.Service,
	authorizer *auth.Authorizer,
	m *metrics.Metrics,
	log logger.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		store:      contentStore,
		queries:    queries,
		ingest:     ingestService,
		authorizer: authorizer,
		metrics:    m,
		logger:     log,
	}
}

// SetupRoutes builds the gin engine with middleware, API routes and the
// server-rendered pages.
func (r *Router) SetupRoutes() *gin.Engine {
	if !r.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(r.logger))
	if r.metrics != nil {
		router.Use(r.metrics.Middleware())
		router.GET("/metrics", r.metrics.Handler())
	}

	router.GET("/health", r.healthCheck)

	v1 := router.Group("/api/v1")

	articles := v1.Group("/articles")
	articles.GET("", r.listArticles)
	articles.GET("/recent", r.getRecentArticles) // More specific route before :slug
	articles.GET("/:slug", r.getArticle)

	sections := v1.Group("/sections")
	sections.GET("", r.listTopSections)
	sections.GET("/:name/articles", r.listSectionArticles)

	v1.GET("/search", r.searchArticles)

	admin := v1.Group("/admin")
	admin.Use(requireAuthorized(r.authorizer))
	admin.POST("/fetch-articles", r.fetchArticles)
	admin.DELETE("/articles", r.clearArticles)

	web.RegisterPages(router, r.queries, r.store, requireAuthorized(r.authorizer))

	return router
}

// healthCheck returns the service health status
// GET /health
func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  "sixer",
		"version":  serviceVersion,
		"articles": r.store.Count(),
	})
}
