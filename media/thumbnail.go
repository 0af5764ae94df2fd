package media

import (
	"strings"

	"github.com/samber/mo"
)

// Thumbnail is one artwork candidate.
type Thumbnail struct {
	URL    string         `json:"url"`
	Width  mo.Option[int] `json:"width,omitempty"`
	Height mo.Option[int] `json:"height,omitempty"`
}

// StripQuery removes the query string from a URL. Catalog CDNs vary only
// the query between otherwise identical artwork links.
func StripQuery(url string) string {
	base, _, _ := strings.Cut(url, "?")
	return base
}

// DedupeThumbnails canonicalizes thumbnail URLs by stripping their query
// strings, then drops exact duplicates, preserving first-seen order.
func DedupeThumbnails(thumbnails []Thumbnail) []Thumbnail {
	seen := make(map[string]bool, len(thumbnails))
	result := make([]Thumbnail, 0, len(thumbnails))

	for _, t := range thumbnails {
		t.URL = StripQuery(t.URL)
		if t.URL == "" || seen[t.URL] {
			continue
		}

		seen[t.URL] = true
		result = append(result, t)
	}

	return result
}
