package api

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	feedsAPI "github.com/dreamecho/feed-api/api/feeds"
	"github.com/dreamecho/feed-api/api/health"
	historyAPI "github.com/dreamecho/feed-api/api/history"
	"github.com/dreamecho/feed-api/api/sleep"
	"github.com/dreamecho/feed-api/api/types"
	"github.com/dreamecho/feed-api/api/version"
	_ "github.com/dreamecho/feed-api/docs/swagger"
	feedsService "github.com/dreamecho/feed-api/internal/services/feeds"
	historyService "github.com/dreamecho/feed-api/internal/services/history"
	"github.com/dreamecho/feed-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Initialize services if not already set
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.FeedService == nil {
		initializeFeedService(deps, cfg)
	}

	// Register feed routes with rate limiting from config
	feedGroup := v1.Group("/feeds")
	if cfg.RateLimiting.Enabled {
		rps, burst := limiterFor(cfg, "feeds")
		feedGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	feedsAPI.RegisterRoutes(feedGroup, deps)

	// History and sleep score routes need persistence
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.HistoryService == nil {
			initializeHistoryService(deps, cfg)
		}

		historyGroup := v1.Group("/history")
		if cfg.RateLimiting.Enabled {
			rps, burst := limiterFor(cfg, "search")
			historyGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
		}
		historyAPI.RegisterRoutes(historyGroup, deps)

		sleepGroup := v1.Group("/sleep")
		if cfg.RateLimiting.Enabled {
			rps, burst := limiterFor(cfg, "default")
			sleepGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
		}
		sleep.RegisterRoutes(sleepGroup, deps)
	}

	return nil
}

// limiterFor translates a per-minute endpoint budget into limiter settings.
func limiterFor(cfg *config.Config, endpoint string) (rps, burst int) {
	perMinute := cfg.RateLimiting.Endpoints[endpoint]
	if perMinute <= 0 {
		perMinute = cfg.RateLimiting.Endpoints["default"]
	}
	if perMinute <= 0 {
		perMinute = 120
	}

	rps = perMinute / 60
	if rps < 1 {
		rps = 1
	}
	return rps, rps * 2
}

// initializeFeedService creates and configures the feed service
func initializeFeedService(deps *types.Dependencies, cfg *config.Config) {
	// Create dependencies
	fetcher := feedsService.NewFetcher(cfg)
	parser := feedsService.NewParser()

	cacheOpts := []feedsService.CacheOption{
		feedsService.WithTTL(cfg.Feeds.CacheTTL),
		feedsService.WithMaxEntries(cfg.Feeds.CacheMaxEntries),
	}
	if deps.DB != nil && deps.DB.DB != nil {
		cacheOpts = append(cacheOpts, feedsService.WithStore(feedsService.NewRepository(deps.DB.DB)))
	}

	cache := feedsService.NewCache(cacheOpts...)
	if err := cache.Warm(context.Background()); err != nil {
		log.Printf("[WARN] Failed to warm feed cache: %v", err)
	}

	// Create service
	deps.FeedService = feedsService.NewService(
		fetcher,
		parser,
		cache,
		feedsService.WithMaxConcurrentRefresh(cfg.Feeds.MaxConcurrentRefresh),
		feedsService.WithRefreshTimeout(cfg.Feeds.RefreshTimeout),
	)
}

// initializeHistoryService creates and configures the history service
func initializeHistoryService(deps *types.Dependencies, cfg *config.Config) {
	deps.HistoryService = historyService.NewService(
		historyService.NewRepository(deps.DB.DB),
		historyService.WithSearchDefaults(cfg.Search.Threshold, cfg.Search.MaxResults),
	)
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
