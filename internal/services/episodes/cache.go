package episodes

import (
	"sync"
	"time"

	"github.com/castpage/catalog-api/internal/models"
)

// SnapshotCache remembers the last successfully listed catalog so reads
// can fall back to a stale copy when the backing store is unreachable.
// It is read-only from the caller's point of view: writes reach it only
// as a side effect of a successful List.
type SnapshotCache struct {
	mu       sync.RWMutex
	episodes []models.Episode
	featured []string
	takenAt  time.Time
	valid    bool
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{}
}

// Set replaces the snapshot with a fresh copy of the listing.
func (c *SnapshotCache) Set(episodes []models.Episode, featured []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.episodes = make([]models.Episode, len(episodes))
	copy(c.episodes, episodes)
	c.featured = make([]string, len(featured))
	copy(c.featured, featured)
	c.takenAt = time.Now().UTC()
	c.valid = true
}

// Get returns the last snapshot and when it was taken. ok is false when
// no successful listing has happened yet.
func (c *SnapshotCache) Get() (episodes []models.Episode, featured []string, takenAt time.Time, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return nil, nil, time.Time{}, false
	}

	episodes = make([]models.Episode, len(c.episodes))
	copy(episodes, c.episodes)
	featured = make([]string, len(c.featured))
	copy(featured, c.featured)
	return episodes, featured, c.takenAt, true
}

// Clear drops the snapshot.
func (c *SnapshotCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.episodes = nil
	c.featured = nil
}
