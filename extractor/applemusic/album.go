package applemusic

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"

	"github.com/cadence-dl/cadence/log"
	"github.com/cadence-dl/cadence/manifest"
	"github.com/cadence-dl/cadence/media"
	"github.com/cadence-dl/cadence/util"
)

var (
	albumRe = regexp.MustCompile(
		`^https?://(?:(?:geo|beta)\.)?music\.apple\.com/(?P<region>[a-z]{2})/album/.+/(?P<album_id>[0-9]+)`)
	coverURLRe = regexp.MustCompile(`-?\.m3u8`)
)

// Album extracts an album: its track references plus, when the catalog
// carries one, the animated cover as a leading video entry.
type Album struct {
	base
}

func NewAlbum() *Album {
	return &Album{base: newBase()}
}

func (*Album) Name() string {
	return "applemusic:album"
}

// Match accepts album URLs that do not single out a track. A "?i=" track
// selector turns the same URL into a song reference.
func (*Album) Match(rawURL string) bool {
	return albumRe.MatchString(rawURL) && !songRe.MatchString(rawURL)
}

func (e *Album) Extract(rawURL string) (*media.Item, error) {
	groups := util.ReGroups(albumRe, rawURL)
	region, albumID := groups["region"], groups["album_id"]

	var envelope apiEnvelope
	err := e.apiJSON(
		fmt.Sprintf("/v1/catalog/%s/albums/%s", region, albumID),
		mergeQuery(langQuery(rawURL), url.Values{
			"include": {"tracks"},
			"extend":  {"editorialVideo"},
		}),
		suppressUserAuth,
		[]int{404},
		&envelope)
	if err != nil {
		return nil, err
	}

	if len(envelope.Data) == 0 {
		return nil, media.NotFoundError("album")
	}
	album := &envelope.Data[0]

	item := &media.Item{
		ID:         albumID,
		Kind:       media.KindPlaylist,
		RegionCode: region,
		Headers:    suppressAuth,
	}
	applyCommonMetadata(album, item)
	applyAlbumMetadata(album, item)

	if t, ok := formatThumbnail(album.Attributes.Artwork); ok {
		item.Thumbnails = media.DedupeThumbnails([]media.Thumbnail{t})
	}

	if cover := e.extractAnimatedCover(album, item); cover != nil {
		item.Entries = append(item.Entries, media.Entry{
			ID:    albumID,
			Title: item.Title,
			Item:  cover,
		})
	} else {
		log.Info("this album does not have an animated cover")
	}

	for _, track := range album.Relationships.Tracks.Data {
		if track.Attributes.URL == "" {
			continue
		}
		item.Entries = append(item.Entries, media.Entry{
			ID:    track.ID,
			URL:   track.Attributes.URL,
			Title: track.Attributes.Name,
		})
	}

	return item, nil
}

// extractAnimatedCover resolves the editorial video clips into a video
// item. The catalog duplicates clips under several aspect-ratio keys, so
// URLs are deduplicated before fetching.
func (e *Album) extractAnimatedCover(album *resource, parent *media.Item) *media.Item {
	clips := album.Attributes.EditorialVideo
	if len(clips) == 0 {
		return nil
	}

	names := make([]string, 0, len(clips))
	for name := range clips {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		renditions []*manifest.Rendition
		thumbnails []media.Thumbnail
		seen       = make(map[string]bool)
	)

	for _, name := range names {
		clip := clips[name]
		if clip.Video == "" || seen[clip.Video] {
			continue
		}
		seen[clip.Video] = true

		doc, err := e.fetchManifest(clip.Video)
		if err != nil {
			log.Error(err)
			continue
		}

		for _, r := range manifest.ParseRenditions(doc, clip.Video) {
			r.FormatID = name
			// The CDN serves the same content progressively next to the
			// manifest, which downloads faster and remuxes cleaner.
			r.URL = coverURLRe.ReplaceAllString(r.URL, "-.mp4")
			r.Protocol = "http"
			r.Ext = "mp4"
			renditions = append(renditions, r)
		}

		if t, ok := formatThumbnail(clip.PreviewFrame); ok {
			thumbnails = append(thumbnails, t)
		}
	}

	if len(renditions) == 0 {
		return nil
	}

	cover := *parent
	cover.Kind = "editorialVideo"
	cover.Entries = nil
	cover.Renditions = renditions
	cover.Thumbnails = media.DedupeThumbnails(thumbnails)
	return &cover
}
