package admin

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/castpage/catalog-api/api/types"
	"github.com/castpage/catalog-api/internal/services/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadImage stores a cover image and returns its public URL
// @Summary Upload cover image
// @Description Upload a raw image body; oversized images are downscaled before storage
// @Tags admin
// @Accept octet-stream
// @Produce json
// @Success 200 {object} types.UploadResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 502 {object} types.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/upload [post]
func UploadImage(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ObjectStore == nil {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "Image storage is not configured"})
			return
		}

		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Failed to read upload body"})
			return
		}
		if len(data) == 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Upload body is empty"})
			return
		}

		contentType := c.ContentType()
		prepared, err := storage.PrepareImage(data, contentType, deps.MaxImageWidth)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Unrecognized image data"})
			return
		}

		key := fmt.Sprintf("%s.%s", uuid.New().String(), storage.ExtensionFor(contentType))
		url, err := deps.ObjectStore.Put(c.Request.Context(), key, contentType, bytes.NewReader(prepared))
		if err != nil {
			log.Printf("[ERROR] Failed to store image %s: %v", key, err)
			c.JSON(http.StatusBadGateway, types.ErrorResponse{Error: "Image storage unavailable"})
			return
		}

		log.Printf("[DEBUG] Stored cover image %s (%d bytes)", key, len(prepared))
		c.JSON(http.StatusOK, types.UploadResponse{URL: url})
	}
}
