// Package itunes extracts purchases from the legacy HLS playlist endpoint,
// which carries its entire metadata record inside the manifest's
// session-data directives.
package itunes

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/cadence-dl/cadence/key"
	"github.com/cadence-dl/cadence/manifest"
	"github.com/cadence-dl/cadence/media"
	"github.com/cadence-dl/cadence/network"
	"github.com/spf13/viper"
)

var playlistURLRe = regexp.MustCompile(
	`^https?://play\.itunes\.apple\.com/WebObjects/MZPlay\.woa/hls/playlist\.m3u8(?:\?|.+&)a=(?P<id>\d+)`)

const metadataPrefix = "com.apple.hls."

// Playlist extracts one legacy playlist item.
type Playlist struct {
	client      *http.Client
	playlistURL string
}

func NewPlaylist() *Playlist {
	return &Playlist{
		client:      network.Default(),
		playlistURL: "https://play.itunes.apple.com/WebObjects/MZPlay.woa/hls/playlist.m3u8",
	}
}

func (*Playlist) Name() string {
	return "itunes"
}

func (*Playlist) Match(rawURL string) bool {
	return playlistURLRe.MatchString(rawURL)
}

func (e *Playlist) Extract(rawURL string) (*media.Item, error) {
	videoID := playlistURLRe.FindStringSubmatch(rawURL)[1]

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	// dsid identifies the requesting account and must not leak into the
	// manifest URL the host stores.
	query := parsed.Query()
	query.Del("dsid")

	manifestURL := e.playlistURL + "?" + query.Encode()
	doc, err := e.fetchPlaylist(manifestURL)
	if err != nil {
		return nil, err
	}

	metadata := manifest.ParseSessionData(doc)

	item := &media.Item{
		ID:          videoID,
		Series:      metadata[metadataPrefix+"title"],
		Title:       metadata[metadataPrefix+"episode-title"],
		Episode:     metadata[metadataPrefix+"episode-title"],
		Description: metadata[metadataPrefix+"description"],
		AgeLimit:    media.ParseAgeLimit(metadata[metadataPrefix+"rating-tag"]),
		ReleaseDate: media.UnifiedDate(metadata[metadataPrefix+"release-date"]),
	}

	if poster := metadata[metadataPrefix+"poster"]; poster != "" {
		item.Thumbnails = []media.Thumbnail{{URL: formatPoster(poster)}}
	}

	// these manifests are always encrypted, video and audio both
	renditions := manifest.ParseRenditions(doc, manifestURL)
	for _, r := range renditions {
		r.Ext = "mp4"
		r.HasDRM = true
	}
	item.Renditions = renditions

	return item, nil
}

func (e *Playlist) fetchPlaylist(target string) (string, error) {
	resp, err := e.client.Get(target)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("playlist: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// formatPoster substitutes the artwork template placeholders with the
// configured dimensions and extension.
func formatPoster(template string) string {
	return strings.NewReplacer(
		"{w}", fmt.Sprint(viper.GetInt(key.ThumbnailMaxWidth)),
		"{h}", fmt.Sprint(viper.GetInt(key.ThumbnailMaxHeight)),
		"{f}", viper.GetString(key.ThumbnailExtension),
	).Replace(template)
}
