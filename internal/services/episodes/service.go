package episodes

import (
	"context"
	"log"
	"strings"

	"github.com/castpage/catalog-api/internal/models"
	"github.com/castpage/catalog-api/pkg/slug"
)

// Service wraps an EpisodeStore with the catalog's business rules: slug
// derivation, required-field validation, transcript normalization,
// default date-descending ordering, and a stale-read fallback when the
// store errors on List.
type Service struct {
	store    EpisodeStore
	snapshot *SnapshotCache
}

// Option configures a Service
type Option func(*Service)

// WithSnapshotCache enables the stale-read fallback for List.
func WithSnapshotCache(cache *SnapshotCache) Option {
	return func(s *Service) {
		s.snapshot = cache
	}
}

func NewService(store EpisodeStore, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every episode newest first plus the featured slug list.
// When the store fails and a snapshot is available, the snapshot is
// served instead so the catalog page degrades to stale rather than
// blank.
func (s *Service) List(ctx context.Context) ([]models.Episode, []string, error) {
	episodes, featured, err := s.store.List(ctx)
	if err != nil {
		if s.snapshot != nil {
			if cached, cachedFeatured, takenAt, ok := s.snapshot.Get(); ok {
				log.Printf("[WARN] episode store list failed, serving snapshot from %s: %v", takenAt.Format("2006-01-02T15:04:05Z"), err)
				return SortByDateDescending(cached), cachedFeatured, nil
			}
		}
		return nil, nil, err
	}

	if s.snapshot != nil {
		s.snapshot.Set(episodes, featured)
	}
	return SortByDateDescending(episodes), featured, nil
}

// GetBySlug returns a single episode.
func (s *Service) GetBySlug(ctx context.Context, episodeSlug string) (*models.Episode, error) {
	return s.store.GetBySlug(ctx, episodeSlug)
}

// Create validates the record, derives a slug from the title when none
// is supplied, normalizes the transcript, and inserts it.
func (s *Service) Create(ctx context.Context, episode *models.Episode) (*models.Episode, error) {
	if err := prepare(episode); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, episode); err != nil {
		return nil, err
	}
	return episode, nil
}

// Update validates and fully replaces the record with the same slug.
func (s *Service) Update(ctx context.Context, episode *models.Episode) (*models.Episode, error) {
	if strings.TrimSpace(episode.Slug) == "" {
		return nil, NewValidationError("slug", "is required")
	}
	if err := prepare(episode); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, episode); err != nil {
		return nil, err
	}
	return episode, nil
}

// Delete removes an episode and its featured entry.
func (s *Service) Delete(ctx context.Context, episodeSlug string) error {
	if strings.TrimSpace(episodeSlug) == "" {
		return NewValidationError("slug", "is required")
	}
	return s.store.Delete(ctx, episodeSlug)
}

// ToggleFeatured flips a slug's featured status and returns the new
// list. Only existing episodes can be featured.
func (s *Service) ToggleFeatured(ctx context.Context, episodeSlug string) ([]string, error) {
	if _, err := s.store.GetBySlug(ctx, episodeSlug); err != nil {
		return nil, err
	}
	return s.store.ToggleFeatured(ctx, episodeSlug)
}

// Import upserts every record in the document and rebuilds the featured
// list. Records are normalized the same way Create normalizes them, but
// per-record problems are collected instead of aborting the batch.
func (s *Service) Import(ctx context.Context, records []models.Episode, featuredSlugs []string) (*ImportResult, error) {
	prepared := make([]models.Episode, 0, len(records))
	skipped := []ImportError{}
	for i := range records {
		record := records[i]
		if err := prepare(&record); err != nil {
			skipped = append(skipped, ImportError{Slug: record.Slug, Message: err.Error()})
			continue
		}
		prepared = append(prepared, record)
	}

	result, err := s.store.BulkImport(ctx, prepared, featuredSlugs)
	if err != nil {
		return nil, err
	}
	result.Errors = append(skipped, result.Errors...)
	return result, nil
}

// Export captures the full catalog as a portable document.
func (s *Service) Export(ctx context.Context) (*ExportDocument, error) {
	episodes, featured, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewExportDocument(SortByDateDescending(episodes), featured), nil
}

// prepare validates required fields and fills derived ones in place.
func prepare(episode *models.Episode) error {
	if strings.TrimSpace(episode.Title) == "" {
		return NewValidationError("title", "is required")
	}
	if strings.TrimSpace(episode.Company) == "" {
		return NewValidationError("company", "is required")
	}
	if strings.TrimSpace(episode.Duration) == "" {
		return NewValidationError("duration", "is required")
	}
	if strings.TrimSpace(episode.Description) == "" {
		return NewValidationError("description", "is required")
	}

	if strings.TrimSpace(episode.Slug) == "" {
		derived := slug.Derive(episode.Title)
		if derived == "" {
			return NewValidationError("slug", "cannot be derived from title")
		}
		episode.Slug = derived
	}

	episode.Transcript = episode.Transcript.Normalize()
	return nil
}
