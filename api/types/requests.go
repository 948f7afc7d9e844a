package types

import "github.com/castpage/catalog-api/internal/models"

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SlugRequest identifies an episode by slug for delete and
// toggle-featured calls.
type SlugRequest struct {
	Slug string `json:"slug" binding:"required"`
}

// ImportRequest is the body of a catalog import: the same document the
// export endpoint produces.
type ImportRequest struct {
	Episodes      []models.Episode `json:"episodes" binding:"required"`
	FeaturedSlugs []string         `json:"featuredSlugs"`
}
