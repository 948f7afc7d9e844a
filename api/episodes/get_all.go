package episodes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/castpage/catalog-api/api/types"
	episodesService "github.com/castpage/catalog-api/internal/services/episodes"
	"github.com/gin-gonic/gin"
)

// GetAll returns the full catalog newest first, plus the featured slug
// list. A q parameter filters by case-insensitive substring across
// title, company, description and duration; a page parameter returns
// one 9-episode page of the (filtered) list.
// @Summary List episodes
// @Description List all episodes with the featured slug list, optionally filtered and paginated
// @Tags episodes
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "1-indexed page of 9 episodes"
// @Success 200 {object} types.EpisodeListResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /api/v1/episodes [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, featured, err := deps.EpisodeService.List(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to list episodes: %v", err)
			types.RespondError(c, err)
			return
		}

		filtered := episodesService.Filter(all, c.Query("q"))

		response := types.EpisodeListResponse{
			Episodes:      filtered,
			FeaturedSlugs: featured,
		}

		if pageStr := c.Query("page"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil || page < 1 {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid page number"})
				return
			}
			response.Episodes = episodesService.Paginate(filtered, page, episodesService.DefaultPageSize)
			response.TotalPages = episodesService.TotalPages(len(filtered), episodesService.DefaultPageSize)
		}

		c.JSON(http.StatusOK, response)
	}
}
