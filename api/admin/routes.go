package admin

import (
	"github.com/castpage/catalog-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the admin panel routes. Login and logout are
// open; everything else requires a live session.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/login", Login(deps))
	router.POST("/logout", Logout(deps))

	protected := router.Group("")
	protected.Use(RequireSession(deps))

	// Episode management
	protected.GET("/episodes", ListEpisodes(deps))
	protected.POST("/episodes", CreateEpisode(deps))
	protected.PUT("/episodes/:slug", UpdateEpisode(deps))
	protected.DELETE("/episodes", DeleteEpisode(deps))

	// Featured list
	protected.POST("/featured", ToggleFeatured(deps))

	// Cover image upload
	protected.POST("/upload", UploadImage(deps))

	// Catalog transfer
	protected.GET("/export", ExportCatalog(deps))
	protected.POST("/import", ImportCatalog(deps))
}
