package admin

import (
	"log"
	"net/http"

	"github.com/castpage/catalog-api/api/types"
	"github.com/castpage/catalog-api/internal/models"
	"github.com/gin-gonic/gin"
)

// ListEpisodes returns the full catalog for the admin dashboard
// @Summary List episodes (admin)
// @Description List every episode with the featured slug list, newest first
// @Tags admin
// @Produce json
// @Success 200 {object} types.EpisodeListResponse
// @Security BearerAuth
// @Router /api/v1/admin/episodes [get]
func ListEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, featured, err := deps.EpisodeService.List(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to list episodes: %v", err)
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.EpisodeListResponse{
			Episodes:      all,
			FeaturedSlugs: featured,
		})
	}
}

// CreateEpisode adds an episode to the catalog
// @Summary Create episode
// @Description Create an episode; the slug is derived from the title when omitted
// @Tags admin
// @Accept json
// @Produce json
// @Param episode body models.Episode true "Episode"
// @Success 201 {object} types.EpisodeResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 409 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/episodes [post]
func CreateEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var episode models.Episode
		if err := c.ShouldBindJSON(&episode); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid episode payload"})
			return
		}

		created, err := deps.EpisodeService.Create(c.Request.Context(), &episode)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		log.Printf("[DEBUG] Created episode %q", created.Slug)
		c.JSON(http.StatusCreated, types.EpisodeResponse{Success: true, Episode: created})
	}
}

// UpdateEpisode replaces an episode in full
// @Summary Update episode
// @Description Replace the episode identified by slug with the request body
// @Tags admin
// @Accept json
// @Produce json
// @Param slug path string true "Episode slug"
// @Param episode body models.Episode true "Episode"
// @Success 200 {object} types.EpisodeResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/episodes/{slug} [put]
func UpdateEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var episode models.Episode
		if err := c.ShouldBindJSON(&episode); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid episode payload"})
			return
		}

		// The path identifies the record; the body cannot move it.
		episode.Slug = c.Param("slug")

		updated, err := deps.EpisodeService.Update(c.Request.Context(), &episode)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		log.Printf("[DEBUG] Updated episode %q", updated.Slug)
		c.JSON(http.StatusOK, types.EpisodeResponse{Success: true, Episode: updated})
	}
}

// DeleteEpisode removes an episode and its featured entry
// @Summary Delete episode
// @Description Delete the episode named in the request body; it also leaves the featured list
// @Tags admin
// @Accept json
// @Produce json
// @Param request body types.SlugRequest true "Episode slug"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/episodes [delete]
func DeleteEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SlugRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Slug is required"})
			return
		}

		if err := deps.EpisodeService.Delete(c.Request.Context(), req.Slug); err != nil {
			types.RespondError(c, err)
			return
		}

		log.Printf("[DEBUG] Deleted episode %q", req.Slug)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
