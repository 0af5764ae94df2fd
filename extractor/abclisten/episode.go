package abclisten

import (
	"regexp"

	"github.com/cadence-dl/cadence/media"
)

var episodeURLRe = regexp.MustCompile(`^https?://(?:www\.)?abc\.net\.au/listen/audiobooks/[^/]+/[^/]+/(?P<id>\d+)`)

// Episode extracts a single audiobook episode.
type Episode struct {
	base
}

func NewEpisode() *Episode {
	return &Episode{base: newBase()}
}

func (*Episode) Name() string {
	return "abclisten:episode"
}

func (*Episode) Match(rawURL string) bool {
	return episodeURLRe.MatchString(rawURL)
}

func (e *Episode) Extract(rawURL string) (*media.Item, error) {
	episodeID := episodeURLRe.FindStringSubmatch(rawURL)[1]

	var data struct {
		Episode *episodeNode `json:"episode"`
	}
	if err := e.graphql("GetEpisodeById", map[string]any{"id": episodeID}, &data); err != nil {
		return nil, err
	}

	if data.Episode == nil {
		return nil, media.NotFoundError("episode")
	}
	node := data.Episode

	item := episodeItem(node)
	item.ID = episodeID
	item.ReleaseDate = media.UnifiedDate(node.FirstUpdated)
	item.ModifiedDate = media.UnifiedDate(node.LastUpdated)

	if thumbnails := imageThumbnails(node.ThumbnailLink); len(thumbnails) > 0 {
		item.Thumbnails = media.DedupeThumbnails(thumbnails)
	}

	return item, nil
}
