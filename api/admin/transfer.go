package admin

import (
	"log"
	"net/http"

	"github.com/castpage/catalog-api/api/types"
	apperrors "github.com/castpage/catalog-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ExportCatalog returns the full catalog as a portable document
// @Summary Export catalog
// @Description Export all episodes and the featured slug list
// @Tags admin
// @Produce json
// @Success 200 {object} episodes.ExportDocument
// @Security BearerAuth
// @Router /api/v1/admin/export [get]
func ExportCatalog(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := deps.EpisodeService.Export(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to export catalog: %v", err)
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, doc)
	}
}

// ImportCatalog bulk-imports an exported catalog document
// @Summary Import catalog
// @Description Upsert episodes by slug and replace the featured list; records that fail are reported individually
// @Tags admin
// @Accept json
// @Produce json
// @Param request body types.ImportRequest true "Catalog document"
// @Success 200 {object} types.ImportResponse
// @Failure 400 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/import [post]
func ImportCatalog(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid import document"})
			return
		}

		result, err := deps.EpisodeService.Import(c.Request.Context(), req.Episodes, req.FeaturedSlugs)
		if err != nil {
			log.Printf("[ERROR] Catalog import failed: %v", err)
			types.RespondError(c, err)
			return
		}

		log.Printf("[DEBUG] Imported %d episodes (%d errors)", result.Imported, len(result.Errors))
		response := types.ImportResponse{
			Success:  len(result.Errors) == 0,
			Imported: result.Imported,
			Errors:   result.Errors,
		}
		if !response.Success {
			response.Code = string(apperrors.ErrCodePartialImport)
			log.Printf("[WARN] Catalog import rejected %d records", len(result.Errors))
		}
		c.JSON(http.StatusOK, response)
	}
}
