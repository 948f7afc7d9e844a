package episodes

import (
	"sort"
	"strings"
	"time"

	"github.com/castpage/catalog-api/internal/models"
)

// DefaultPageSize is the catalog grid page size.
const DefaultPageSize = 9

// Filter returns the episodes where query appears, case-insensitively,
// in the title, company, description, or duration. A blank or
// whitespace-only query returns the input unchanged in its original
// order.
func Filter(episodes []models.Episode, query string) []models.Episode {
	if strings.TrimSpace(query) == "" {
		return episodes
	}

	q := strings.ToLower(query)
	matched := make([]models.Episode, 0, len(episodes))
	for _, ep := range episodes {
		if strings.Contains(strings.ToLower(ep.Title), q) ||
			strings.Contains(strings.ToLower(ep.Company), q) ||
			strings.Contains(strings.ToLower(ep.Description), q) ||
			strings.Contains(strings.ToLower(ep.Duration), q) {
			matched = append(matched, ep)
		}
	}
	return matched
}

// Paginate returns the 1-indexed page of the given size. Out-of-range
// pages yield an empty slice rather than an error.
func Paginate(episodes []models.Episode, page, pageSize int) []models.Episode {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		return []models.Episode{}
	}

	start := (page - 1) * pageSize
	if start >= len(episodes) {
		return []models.Episode{}
	}

	end := start + pageSize
	if end > len(episodes) {
		end = len(episodes)
	}
	return episodes[start:end]
}

// TotalPages reports how many pages Paginate can serve for n episodes.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return (n + pageSize - 1) / pageSize
}

// SortByDateDescending orders episodes newest first by their parsed
// date. The sort is stable: episodes with equal (or unparseable) dates
// keep their relative input order. The input slice is not modified.
func SortByDateDescending(episodes []models.Episode) []models.Episode {
	sorted := make([]models.Episode, len(episodes))
	copy(sorted, episodes)

	sort.SliceStable(sorted, func(i, j int) bool {
		return parseDate(sorted[i].Date).After(parseDate(sorted[j].Date))
	})
	return sorted
}

// dateLayouts covers the formats episode dates have shipped in: ISO
// dates from the database and human-readable ones typed into the admin
// form.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

func parseDate(date string) time.Time {
	trimmed := strings.TrimSpace(date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	return time.Time{}
}
