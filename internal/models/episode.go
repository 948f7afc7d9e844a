package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Episode represents a single show entry in the catalog.
//
// Slug is the unique key; everything else is display content. The JSON
// field names match the document format the admin dashboard exports and
// imports.
type Episode struct {
	ID        uint      `json:"-" gorm:"primarykey"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Slug             string `json:"slug" gorm:"uniqueIndex;not null"`
	Title            string `json:"title" gorm:"not null"`
	Company          string `json:"company"`
	Duration         string `json:"duration"`
	Description      string `json:"description" gorm:"type:text"`
	ShortDescription string `json:"shortDescription,omitempty"`

	// Season holds either a number or a label such as "Special"; it only
	// affects display formatting. Number is empty for unnumbered specials.
	Season string `json:"season"`
	Number string `json:"episode,omitempty" gorm:"column:episode"`

	Date       string `json:"date"`
	CoverImage string `json:"coverImage"`

	YoutubeID        string `json:"youtubeId,omitempty"`
	SpotifyURL       string `json:"spotifyUrl,omitempty"`
	ApplePodcastsURL string `json:"applePodcastsUrl,omitempty"`

	Transcript *Transcript `json:"transcript,omitempty" gorm:"serializer:json"`
	CarveOuts  []CarveOut  `json:"carveOuts,omitempty" gorm:"serializer:json"`
	FollowUps  []string    `json:"followUps,omitempty" gorm:"serializer:json"`
	Sponsors   []Sponsor   `json:"sponsors,omitempty" gorm:"serializer:json"`
}

// CarveOut is one host's list of recommendations for an episode.
type CarveOut struct {
	Person string   `json:"person"`
	Items  []string `json:"items"`
}

// Sponsor is a single sponsor block on an episode page.
type Sponsor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FeaturedEpisode is one slot in the ordered featured list. Position 0
// is the most recently featured slug.
type FeaturedEpisode struct {
	ID       uint   `json:"-" gorm:"primarykey"`
	Slug     string `json:"slug" gorm:"uniqueIndex;not null"`
	Position int    `json:"position" gorm:"not null"`
}

// TranscriptSegment is one timestamped chunk of a timed transcript.
type TranscriptSegment struct {
	Time string `json:"time"`
	Text string `json:"text"`
}

// Transcript holds either a plain-text transcript (paragraphs separated
// by blank lines) or an ordered list of timed segments. Exactly one of
// the two is ever populated; Normalize enforces that before persisting.
type Transcript struct {
	Plain    string
	Segments []TranscriptSegment
}

// IsTimed reports whether the timed representation is active.
func (t *Transcript) IsTimed() bool {
	return t != nil && len(t.Segments) > 0
}

// IsEmpty reports whether neither representation carries content.
func (t *Transcript) IsEmpty() bool {
	return t == nil || (strings.TrimSpace(t.Plain) == "" && len(t.Segments) == 0)
}

// Normalize collapses the transcript to a single representation. Timed
// segments win when both are somehow present; an empty transcript
// becomes nil so it persists as absent rather than as an empty shell.
func (t *Transcript) Normalize() *Transcript {
	if t.IsEmpty() {
		return nil
	}
	if len(t.Segments) > 0 {
		return &Transcript{Segments: t.Segments}
	}
	return &Transcript{Plain: t.Plain}
}

// Paragraphs splits a plain transcript on blank lines. Returns nil for
// timed transcripts.
func (t *Transcript) Paragraphs() []string {
	if t == nil || t.Plain == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(t.Plain, "\n\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// MarshalJSON emits the active representation: a JSON string for plain
// transcripts, an array of {time,text} objects for timed ones.
func (t Transcript) MarshalJSON() ([]byte, error) {
	if len(t.Segments) > 0 {
		return json.Marshal(t.Segments)
	}
	return json.Marshal(t.Plain)
}

// UnmarshalJSON accepts either wire form.
func (t *Transcript) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*t = Transcript{}
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var segments []TranscriptSegment
		if err := json.Unmarshal(data, &segments); err != nil {
			return fmt.Errorf("parsing timed transcript: %w", err)
		}
		*t = Transcript{Segments: segments}
		return nil
	}
	var plain string
	if err := json.Unmarshal(data, &plain); err != nil {
		return fmt.Errorf("parsing plain transcript: %w", err)
	}
	*t = Transcript{Plain: plain}
	return nil
}
