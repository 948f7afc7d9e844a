package episodes

import (
	"github.com/castpage/catalog-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the public catalog routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/episodes - List all episodes (optional ?q= and ?page=)
	router.GET("", GetAll(deps))

	// GET /api/v1/episodes/:slug - Get a single episode
	router.GET("/:slug", GetBySlug(deps))
}
