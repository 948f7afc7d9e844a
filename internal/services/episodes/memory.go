package episodes

import (
	"context"
	"sync"

	"github.com/castpage/catalog-api/internal/models"
)

// MemoryStore keeps the catalog in process memory. It backs local
// development and tests; state is owned by the store object and lost on
// restart.
type MemoryStore struct {
	mu       sync.RWMutex
	episodes []models.Episode
	featured []string
}

// Ensure MemoryStore implements EpisodeStore
var _ EpisodeStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWithData seeds a store, typically from an export
// document.
func NewMemoryStoreWithData(episodes []models.Episode, featured []string) *MemoryStore {
	s := &MemoryStore{
		episodes: make([]models.Episode, len(episodes)),
		featured: make([]string, len(featured)),
	}
	copy(s.episodes, episodes)
	copy(s.featured, featured)
	return s
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Episode, []string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	episodes := make([]models.Episode, len(s.episodes))
	copy(episodes, s.episodes)
	featured := make([]string, len(s.featured))
	copy(featured, s.featured)
	return episodes, featured, nil
}

func (s *MemoryStore) GetBySlug(ctx context.Context, slug string) (*models.Episode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.episodes {
		if s.episodes[i].Slug == slug {
			ep := s.episodes[i]
			return &ep, nil
		}
	}
	return nil, NewNotFoundError(slug)
}

func (s *MemoryStore) Create(ctx context.Context, episode *models.Episode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(episode.Slug) != -1 {
		return NewDuplicateSlugError(episode.Slug)
	}

	// New episodes go to the front, matching the admin dashboard order
	s.episodes = append([]models.Episode{*episode}, s.episodes...)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, episode *models.Episode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(episode.Slug)
	if idx == -1 {
		return NewNotFoundError(episode.Slug)
	}

	// Full replacement, not a merge
	s.episodes[idx] = *episode
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(slug)
	if idx == -1 {
		return NewNotFoundError(slug)
	}

	s.episodes = append(s.episodes[:idx], s.episodes[idx+1:]...)
	s.featured = removeSlug(s.featured, slug)
	return nil
}

func (s *MemoryStore) ToggleFeatured(ctx context.Context, slug string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.featured = toggleFeatured(s.featured, slug)

	out := make([]string, len(s.featured))
	copy(out, s.featured)
	return out, nil
}

func (s *MemoryStore) BulkImport(ctx context.Context, records []models.Episode, featuredSlugs []string) (*ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &ImportResult{}
	for i := range records {
		record := records[i]
		if record.Slug == "" {
			result.Errors = append(result.Errors, ImportError{
				Slug:    record.Slug,
				Message: "missing slug",
			})
			continue
		}

		if idx := s.indexOf(record.Slug); idx != -1 {
			s.episodes[idx] = record
		} else {
			s.episodes = append(s.episodes, record)
		}
		result.Imported++
	}

	s.featured = rebuildFeatured(featuredSlugs, func(slug string) bool {
		return s.indexOf(slug) != -1
	})

	return result, nil
}

// indexOf returns the position of slug, or -1. Callers hold the lock.
func (s *MemoryStore) indexOf(slug string) int {
	for i := range s.episodes {
		if s.episodes[i].Slug == slug {
			return i
		}
	}
	return -1
}

// toggleFeatured applies the add/remove rule shared by both backends:
// remove when present, otherwise insert at the front and evict the last
// entry beyond MaxFeatured.
func toggleFeatured(featured []string, slug string) []string {
	for i, s := range featured {
		if s == slug {
			return append(featured[:i], featured[i+1:]...)
		}
	}
	if len(featured) >= MaxFeatured {
		featured = featured[:MaxFeatured-1]
	}
	return append([]string{slug}, featured...)
}

func removeSlug(slugs []string, slug string) []string {
	out := slugs[:0]
	for _, s := range slugs {
		if s != slug {
			out = append(out, s)
		}
	}
	return out
}

// rebuildFeatured keeps the import document's order, dropping slugs
// that reference no stored episode and anything beyond MaxFeatured.
func rebuildFeatured(slugs []string, exists func(string) bool) []string {
	out := make([]string, 0, MaxFeatured)
	for _, slug := range slugs {
		if len(out) >= MaxFeatured {
			break
		}
		if exists(slug) {
			out = append(out, slug)
		}
	}
	return out
}
