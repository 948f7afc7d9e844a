package episodes

import (
	"context"

	"github.com/castpage/catalog-api/internal/models"
)

// MaxFeatured caps the ordered featured list. Featuring a seventh slug
// evicts the last entry.
const MaxFeatured = 6

// ImportError records one record that failed during a bulk import.
type ImportError struct {
	Slug    string `json:"slug"`
	Message string `json:"message"`
}

// ImportResult summarises a bulk import. Imports are best-effort: a
// failing record never blocks the records after it.
type ImportResult struct {
	Imported int           `json:"imported"`
	Errors   []ImportError `json:"errors,omitempty"`
}

// EpisodeStore is the persistence contract for the episode catalog.
// Two interchangeable backends exist: the gorm Repository and the
// in-process MemoryStore, selected by configuration.
type EpisodeStore interface {
	// List returns every episode plus the ordered featured slug list.
	List(ctx context.Context) ([]models.Episode, []string, error)

	// GetBySlug returns one episode or a NotFoundError.
	GetBySlug(ctx context.Context, slug string) (*models.Episode, error)

	// Create inserts a new episode. The slug must already be set;
	// collisions return a DuplicateSlugError.
	Create(ctx context.Context, episode *models.Episode) error

	// Update replaces the stored episode with the same slug in full.
	// Fields absent from the new record are not merged from the old one.
	Update(ctx context.Context, episode *models.Episode) error

	// Delete removes an episode and drops its slug from the featured
	// list.
	Delete(ctx context.Context, slug string) error

	// ToggleFeatured removes the slug if featured, otherwise inserts it
	// at the front, evicting the last entry beyond MaxFeatured. Returns
	// the new featured list.
	ToggleFeatured(ctx context.Context, slug string) ([]string, error)

	// BulkImport upserts every record by slug and rebuilds featured
	// membership from featuredSlugs, accumulating per-record errors.
	BulkImport(ctx context.Context, records []models.Episode, featuredSlugs []string) (*ImportResult, error)
}
