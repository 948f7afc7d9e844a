package episodes

import (
	"context"
	"testing"

	"github.com/castpage/catalog-api/internal/database"
	"github.com/castpage/catalog-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.AutoMigrate(&models.Episode{}, &models.FeaturedEpisode{}))
	return NewRepository(db.DB)
}

func TestRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	episode := &models.Episode{Slug: "costco", Title: "Costco", Date: "2023-01-15"}
	require.NoError(t, repo.Create(ctx, episode))

	got, err := repo.GetBySlug(ctx, "costco")
	require.NoError(t, err)
	assert.Equal(t, "Costco", got.Title)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.True(t, IsNotFound(err))
}

func TestRepositoryCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Create(ctx, &models.Episode{Slug: "costco", Title: "Costco"}))
	err := repo.Create(ctx, &models.Episode{Slug: "costco", Title: "Costco Again"})
	assert.True(t, IsDuplicateSlug(err))
}

func TestRepositoryUpdateIsFullReplacement(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Create(ctx, &models.Episode{
		Slug:        "costco",
		Title:       "Costco",
		Description: "Original",
		YoutubeID:   "abc123",
	}))

	original, err := repo.GetBySlug(ctx, "costco")
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, &models.Episode{
		Slug:  "costco",
		Title: "Costco (Remastered)",
	}))

	got, err := repo.GetBySlug(ctx, "costco")
	require.NoError(t, err)
	assert.Equal(t, "Costco (Remastered)", got.Title)
	assert.Empty(t, got.Description)
	assert.Empty(t, got.YoutubeID)

	// The row identity survives the replacement
	assert.Equal(t, original.ID, got.ID)
}

func TestRepositoryUpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	err := repo.Update(ctx, &models.Episode{Slug: "ghost", Title: "Ghost"})
	assert.True(t, IsNotFound(err))
}

func TestRepositoryDeleteCascadesFeatured(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Create(ctx, &models.Episode{Slug: "costco", Title: "Costco"}))
	require.NoError(t, repo.Create(ctx, &models.Episode{Slug: "lvmh", Title: "LVMH"}))

	_, err := repo.ToggleFeatured(ctx, "costco")
	require.NoError(t, err)
	_, err = repo.ToggleFeatured(ctx, "lvmh")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "costco"))

	_, featured, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"lvmh"}, featured)

	assert.True(t, IsNotFound(repo.Delete(ctx, "costco")))
}

func TestRepositoryToggleFeaturedOrderAndCap(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	slugs := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, s := range slugs {
		require.NoError(t, repo.Create(ctx, &models.Episode{Slug: s, Title: s}))
	}

	var featured []string
	var err error
	for _, s := range slugs {
		featured, err = repo.ToggleFeatured(ctx, s)
		require.NoError(t, err)
	}

	require.Len(t, featured, MaxFeatured)
	assert.Equal(t, []string{"g", "f", "e", "d", "c", "b"}, featured)

	// The persisted order matches what the toggle returned
	_, listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, featured, listed)

	// Toggling an entry off removes just that entry
	featured, err = repo.ToggleFeatured(ctx, "e")
	require.NoError(t, err)
	assert.Equal(t, []string{"g", "f", "d", "c", "b"}, featured)
}

func TestRepositoryBulkImportUpserts(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Create(ctx, &models.Episode{Slug: "costco", Title: "Costco"}))
	existing, err := repo.GetBySlug(ctx, "costco")
	require.NoError(t, err)

	result, err := repo.BulkImport(ctx, []models.Episode{
		{Slug: "costco", Title: "Costco (Updated)"},
		{Slug: "lvmh", Title: "LVMH"},
	}, []string{"lvmh", "nonexistent"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Errors)

	updated, err := repo.GetBySlug(ctx, "costco")
	require.NoError(t, err)
	assert.Equal(t, "Costco (Updated)", updated.Title)
	assert.Equal(t, existing.ID, updated.ID)

	_, featured, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"lvmh"}, featured)
}

func TestRepositoryBulkImportAccumulatesErrors(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	result, err := repo.BulkImport(ctx, []models.Episode{
		{Slug: "", Title: "No Slug"},
		{Slug: "good", Title: "Good"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 1)

	_, err = repo.GetBySlug(ctx, "good")
	assert.NoError(t, err)
}

func TestRepositoryRoundTripsSerializedFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	episode := &models.Episode{
		Slug:  "costco",
		Title: "Costco",
		Transcript: &models.Transcript{
			Segments: []models.TranscriptSegment{{Time: "00:01", Text: "Welcome"}},
		},
		CarveOuts: []models.CarveOut{{Person: "Ben", Items: []string{"a book"}}},
		FollowUps: []string{"check the 10-K"},
		Sponsors:  []models.Sponsor{{Name: "Acme", Description: "Tools"}},
	}
	require.NoError(t, repo.Create(ctx, episode))

	got, err := repo.GetBySlug(ctx, "costco")
	require.NoError(t, err)
	require.NotNil(t, got.Transcript)
	assert.True(t, got.Transcript.IsTimed())
	assert.Equal(t, "Welcome", got.Transcript.Segments[0].Text)
	require.Len(t, got.CarveOuts, 1)
	assert.Equal(t, []string{"a book"}, got.CarveOuts[0].Items)
	assert.Equal(t, []string{"check the 10-K"}, got.FollowUps)
	require.Len(t, got.Sponsors, 1)
	assert.Equal(t, "Acme", got.Sponsors[0].Name)
}
