package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	feedapi "github.com/zoocast/catalog-api/api/feed"
	"github.com/zoocast/catalog-api/api/health"
	"github.com/zoocast/catalog-api/api/ping"
	"github.com/zoocast/catalog-api/api/types"
	"github.com/zoocast/catalog-api/api/version"
	_ "github.com/zoocast/catalog-api/docs/swagger"
	"github.com/zoocast/catalog-api/internal/services/catalog"
	"github.com/zoocast/catalog-api/internal/services/feeds"
	"github.com/zoocast/catalog-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)
	ping.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.Fetcher == nil {
		deps.Fetcher = feeds.NewFetcher(
			config.GetString("feed.url"),
			feeds.WithUserAgent(config.GetString("feed.user_agent")),
			feeds.WithHTTPClient(&http.Client{Timeout: config.GetDuration("feed.timeout")}),
		)
	}

	if deps.Builder == nil {
		deps.Builder = newBuilderFromConfig()
	}

	// The catalog endpoint; every request runs one fetch+build cycle, so
	// keep abusive clients off the upstream feed.
	apiGroup := engine.Group("/api")
	if config.GetBool("rate_limiting.enabled") {
		rps := config.GetInt("rate_limiting.requests_per_second")
		burst := config.GetInt("rate_limiting.burst")
		apiGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	feedapi.RegisterRoutes(apiGroup, deps)

	return nil
}

// newBuilderFromConfig applies the configured month-name table, falling
// back to the builder default.
func newBuilderFromConfig() *catalog.Builder {
	names := config.MonthNames()
	if len(names) == 12 {
		var table [12]string
		copy(table[:], names)
		return catalog.NewBuilder(catalog.WithMonthNames(table))
	}
	return catalog.NewBuilder()
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
