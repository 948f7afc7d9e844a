package episodes

import (
	"context"
	"errors"

	"github.com/castpage/catalog-api/internal/models"
	"gorm.io/gorm"
)

// Repository is the database-backed episode store.
type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements EpisodeStore interface
var _ EpisodeStore = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]models.Episode, []string, error) {
	var episodes []models.Episode
	if err := r.db.WithContext(ctx).Find(&episodes).Error; err != nil {
		return nil, nil, NewStoreError("list", err)
	}

	featured, err := r.featuredSlugs(ctx)
	if err != nil {
		return nil, nil, err
	}
	return episodes, featured, nil
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&episode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(slug)
		}
		return nil, NewStoreError("get", err)
	}
	return &episode, nil
}

func (r *Repository) Create(ctx context.Context, episode *models.Episode) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Episode{}).
		Where("slug = ?", episode.Slug).Count(&count).Error; err != nil {
		return NewStoreError("create", err)
	}
	if count > 0 {
		return NewDuplicateSlugError(episode.Slug)
	}

	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return NewDuplicateSlugError(episode.Slug)
		}
		return NewStoreError("create", err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, episode *models.Episode) error {
	var existing models.Episode
	if err := r.db.WithContext(ctx).Where("slug = ?", episode.Slug).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError(episode.Slug)
		}
		return NewStoreError("update", err)
	}

	// Full replacement: Save writes every column, including zero values
	episode.ID = existing.ID
	episode.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(episode).Error; err != nil {
		return NewStoreError("update", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, slug string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("slug = ?", slug).Delete(&models.Episode{})
		if result.Error != nil {
			return NewStoreError("delete", result.Error)
		}
		if result.RowsAffected == 0 {
			return NewNotFoundError(slug)
		}

		// Deleting an episode always drops it from the featured list
		if err := tx.Where("slug = ?", slug).Delete(&models.FeaturedEpisode{}).Error; err != nil {
			return NewStoreError("delete featured", err)
		}
		return nil
	})
	return err
}

func (r *Repository) ToggleFeatured(ctx context.Context, slug string) ([]string, error) {
	var featured []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []models.FeaturedEpisode
		if err := tx.Order("position ASC").Find(&current).Error; err != nil {
			return NewStoreError("toggle featured", err)
		}

		slugs := make([]string, len(current))
		for i, f := range current {
			slugs[i] = f.Slug
		}
		slugs = toggleFeatured(slugs, slug)

		if err := tx.Where("1 = 1").Delete(&models.FeaturedEpisode{}).Error; err != nil {
			return NewStoreError("toggle featured", err)
		}
		for i, s := range slugs {
			if err := tx.Create(&models.FeaturedEpisode{Slug: s, Position: i}).Error; err != nil {
				return NewStoreError("toggle featured", err)
			}
		}

		featured = slugs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return featured, nil
}

func (r *Repository) BulkImport(ctx context.Context, records []models.Episode, featuredSlugs []string) (*ImportResult, error) {
	result := &ImportResult{}

	for i := range records {
		record := records[i]
		if record.Slug == "" {
			result.Errors = append(result.Errors, ImportError{Message: "missing slug"})
			continue
		}
		if err := r.upsert(ctx, &record); err != nil {
			result.Errors = append(result.Errors, ImportError{
				Slug:    record.Slug,
				Message: err.Error(),
			})
			continue
		}
		result.Imported++
	}

	kept := rebuildFeatured(featuredSlugs, func(slug string) bool {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Episode{}).
			Where("slug = ?", slug).Count(&count).Error; err != nil {
			return false
		}
		return count > 0
	})

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.FeaturedEpisode{}).Error; err != nil {
			return NewStoreError("import featured", err)
		}
		for i, s := range kept {
			if err := tx.Create(&models.FeaturedEpisode{Slug: s, Position: i}).Error; err != nil {
				return NewStoreError("import featured", err)
			}
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	return result, nil
}

// upsert inserts or fully replaces one record by slug.
func (r *Repository) upsert(ctx context.Context, episode *models.Episode) error {
	var existing models.Episode
	err := r.db.WithContext(ctx).Where("slug = ?", episode.Slug).First(&existing).Error

	if err == nil {
		episode.ID = existing.ID
		episode.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(episode).Error; err != nil {
			return NewStoreError("upsert", err)
		}
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
			return NewStoreError("upsert", err)
		}
		return nil
	}

	return NewStoreError("upsert", err)
}

func (r *Repository) featuredSlugs(ctx context.Context) ([]string, error) {
	var featured []models.FeaturedEpisode
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&featured).Error; err != nil {
		return nil, NewStoreError("list featured", err)
	}

	slugs := make([]string, len(featured))
	for i, f := range featured {
		slugs[i] = f.Slug
	}
	return slugs, nil
}
