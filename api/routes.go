package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/castpage/catalog-api/api/admin"
	"github.com/castpage/catalog-api/api/episodes"
	"github.com/castpage/catalog-api/api/health"
	"github.com/castpage/catalog-api/api/types"
	"github.com/castpage/catalog-api/api/version"
	_ "github.com/castpage/catalog-api/docs/swagger"
	"github.com/castpage/catalog-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		return fmt.Errorf("handler dependencies are not configured")
	}
	if deps.EpisodeService == nil {
		return fmt.Errorf("episode service is not configured")
	}
	if deps.SessionService == nil {
		return fmt.Errorf("session service is not configured")
	}

	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	limited := func(group *gin.RouterGroup, rps int) {
		if config.GetBool("rate_limiting.enabled") && rps > 0 {
			group.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, rps*2))
		}
	}

	// Public episode catalog
	publicGroup := v1.Group("/episodes")
	limited(publicGroup, config.GetInt("rate_limiting.public"))
	episodes.RegisterRoutes(publicGroup, deps)

	// Admin panel: login is open, everything else sits behind the
	// session middleware registered inside the package
	adminGroup := v1.Group("/admin")
	limited(adminGroup, config.GetInt("rate_limiting.admin"))
	admin.RegisterRoutes(adminGroup, deps)

	return nil
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
