package episodes

import (
	"time"

	"github.com/castpage/catalog-api/internal/models"
)

// ExportDocument is the portable snapshot of the whole catalog, meant
// for download as a file and later re-upload through the import
// surface. After an import the store is the source of truth; callers
// re-fetch the list rather than trusting the document.
type ExportDocument struct {
	Episodes      []models.Episode `json:"episodes"`
	FeaturedSlugs []string         `json:"featuredSlugs"`
	ExportedAt    time.Time        `json:"exportedAt"`
}

// NewExportDocument stamps a snapshot with the current time.
func NewExportDocument(episodes []models.Episode, featuredSlugs []string) *ExportDocument {
	if episodes == nil {
		episodes = []models.Episode{}
	}
	if featuredSlugs == nil {
		featuredSlugs = []string{}
	}
	return &ExportDocument{
		Episodes:      episodes,
		FeaturedSlugs: featuredSlugs,
		ExportedAt:    time.Now().UTC(),
	}
}
