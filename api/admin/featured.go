package admin

import (
	"net/http"

	"github.com/castpage/catalog-api/api/types"
	"github.com/gin-gonic/gin"
)

// ToggleFeatured adds or removes an episode from the featured list
// @Summary Toggle featured
// @Description Toggle the episode's featured status; new entries go to the front and the list holds at most six
// @Tags admin
// @Accept json
// @Produce json
// @Param request body types.SlugRequest true "Episode slug"
// @Success 200 {object} types.FeaturedResponse
// @Failure 404 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/featured [post]
func ToggleFeatured(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SlugRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Slug is required"})
			return
		}

		featured, err := deps.EpisodeService.ToggleFeatured(c.Request.Context(), req.Slug)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.FeaturedResponse{Success: true, FeaturedSlugs: featured})
	}
}
