package episodes

import (
	"log"
	"net/http"

	"github.com/castpage/catalog-api/api/types"
	episodesService "github.com/castpage/catalog-api/internal/services/episodes"
	"github.com/gin-gonic/gin"
)

// GetBySlug returns a single episode by its slug
// @Summary Get episode
// @Description Get a single episode by slug
// @Tags episodes
// @Produce json
// @Param slug path string true "Episode slug"
// @Success 200 {object} models.Episode
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/episodes/{slug} [get]
func GetBySlug(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		episode, err := deps.EpisodeService.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			if !episodesService.IsNotFound(err) {
				log.Printf("[ERROR] Failed to fetch episode %q: %v", slug, err)
			}
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, episode)
	}
}
