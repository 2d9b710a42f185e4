// Package wiki holds the domain records shared by the use-case and
// presentation layers.
package wiki

import (
	"strings"
	"time"
)

// Summary is the flattened metadata of one article. Constructed once per
// response and never mutated.
type Summary struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Extract          string    `json:"extract"`
	ThumbnailURL     string    `json:"thumbnail_url,omitempty"`
	OriginalImageURL string    `json:"original_image_url,omitempty"`
	PageID           int64     `json:"page_id"`
	Timestamp        time.Time `json:"timestamp,omitempty"`
}

// Valid reports whether the summary carries the minimum displayable
// content: a non-blank title and description.
func (s Summary) Valid() bool {
	return strings.TrimSpace(s.Title) != "" && strings.TrimSpace(s.Description) != ""
}

// MediaTypeImage is the type tag the media-list endpoint uses for still
// images.
const MediaTypeImage = "image"

// MediaItem is one media entry associated with an article.
type MediaItem struct {
	Title    string `json:"title"`
	Caption  string `json:"caption,omitempty"`
	Keywords string `json:"keywords,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Type     string `json:"type"`
}

// Valid requires a non-blank title.
func (m MediaItem) Valid() bool {
	return strings.TrimSpace(m.Title) != ""
}

// HasImage reports whether the item carries a usable image URL.
func (m MediaItem) HasImage() bool {
	return m.ImageURL != ""
}

// IsImage reports whether the item's type tag marks it as a still image.
func (m MediaItem) IsImage() bool {
	return m.Type == MediaTypeImage
}
