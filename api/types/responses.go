package types

import (
	"errors"
	"net/http"

	"github.com/castpage/catalog-api/internal/models"
	"github.com/castpage/catalog-api/internal/services/episodes"
	apperrors "github.com/castpage/catalog-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// EpisodeListResponse is the public and admin listing shape.
type EpisodeListResponse struct {
	Episodes      []models.Episode `json:"episodes"`
	FeaturedSlugs []string         `json:"featuredSlugs"`
	TotalPages    int              `json:"totalPages,omitempty"`
}

// EpisodeResponse wraps a single mutated episode.
type EpisodeResponse struct {
	Success bool            `json:"success"`
	Episode *models.Episode `json:"episode"`
}

// FeaturedResponse returns the featured list after a toggle.
type FeaturedResponse struct {
	Success       bool     `json:"success"`
	FeaturedSlugs []string `json:"featuredSlugs"`
}

// LoginResponse returns the bearer token alongside the session cookie.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// UploadResponse returns the stored object URL for an uploaded image.
type UploadResponse struct {
	URL string `json:"url"`
}

// ImportResponse reports a bulk import, including per-record failures
// when the import only partially succeeded. Code is set to the
// partial-failure taxonomy entry when any record was rejected.
type ImportResponse struct {
	Success  bool                   `json:"success"`
	Imported int                    `json:"imported"`
	Code     string                 `json:"code,omitempty"`
	Errors   []episodes.ImportError `json:"errors,omitempty"`
}

// ErrorResponse is the uniform error body. Code carries the machine
// readable error taxonomy entry; Details holds optional structured
// context such as the offending field.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RespondError maps a service error to its transport outcome and writes
// the response. Raw store errors never reach the client unmapped.
func RespondError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(apperrors.GetHTTPCode(appErr), ErrorResponse{
		Error:   appErr.Message,
		Code:    string(appErr.Code),
		Details: appErr.Details,
	})
}

func mapError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case episodes.IsNotFound(err):
		return apperrors.Wrap(err, apperrors.ErrCodeNotFound, "Episode not found")
	case episodes.IsDuplicateSlug(err):
		return apperrors.Wrap(err, apperrors.ErrCodeDuplicateSlug, "Episode with this slug already exists")
	case episodes.IsValidation(err):
		wrapped := apperrors.Wrap(err, apperrors.ErrCodeValidationFailed, err.Error())
		var validation episodes.ValidationError
		if errors.As(err, &validation) {
			wrapped = wrapped.WithDetail("field", validation.Field)
		}
		return wrapped
	case errors.Is(err, episodes.ErrStore):
		return apperrors.Wrap(err, apperrors.ErrCodeStore, "Episode store unavailable")
	default:
		e := apperrors.Wrap(err, apperrors.ErrCodeInternal, "Internal server error")
		e.HTTPCode = http.StatusInternalServerError
		return e
	}
}
