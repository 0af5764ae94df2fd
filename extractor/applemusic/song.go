package applemusic

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/cadence-dl/cadence/log"
	"github.com/cadence-dl/cadence/manifest"
	"github.com/cadence-dl/cadence/media"
	"github.com/cadence-dl/cadence/storefront"
	"github.com/cadence-dl/cadence/util"
	"github.com/samber/mo"
)

var songRe = regexp.MustCompile(
	`^https?://(?:(?:geo|beta)\.)?music\.apple\.com/(?P<region>[a-z]{2})/` +
		`(?:song/.+/(?P<song_id>[0-9]+)|album/.+/[0-9]+.*[?&]i=(?P<song_id_2>[0-9]+))`)

// Song extracts a single track.
type Song struct {
	base
}

func NewSong() *Song {
	return &Song{base: newBase()}
}

func (*Song) Name() string {
	return "applemusic"
}

func (*Song) Match(rawURL string) bool {
	return songRe.MatchString(rawURL)
}

func (e *Song) Extract(rawURL string) (*media.Item, error) {
	groups := util.ReGroups(songRe, rawURL)
	region := groups["region"]
	songID := media.FirstTitle(groups["song_id"], groups["song_id_2"])

	var envelope apiEnvelope
	err := e.apiJSON(
		fmt.Sprintf("/v1/catalog/%s/songs/%s", region, songID),
		mergeQuery(langQuery(rawURL), url.Values{
			"extend":  {"extendedAssetUrls"},
			"include": {"albums,genres,credits"},
		}),
		suppressUserAuth,
		[]int{404},
		&envelope)
	if err != nil {
		return nil, err
	}

	if len(envelope.Data) == 0 {
		return nil, media.NotFoundError("song")
	}
	song := &envelope.Data[0]

	item := &media.Item{
		ID:         songID,
		Kind:       media.Kind(song.Attributes.PlayParams.Kind),
		RegionCode: region,
		Headers:    suppressAuth,
		Album:      song.Attributes.AlbumName,
		Composer:   song.Attributes.ComposerName,
		Track:      song.Attributes.Name,
		TrackID:    song.Attributes.PlayParams.ID,
		ISRC:       song.Attributes.ISRC,
		Credits:    media.AggregateCredits(creditArtists(song)),
		ArtistIDs:  resourceIDs(song.Relationships.Artists),
		GenreIDs:   resourceIDs(song.Relationships.Genres),
	}

	applyCommonMetadata(song, item)
	item.Renditions = e.extractRenditions(song, item)
	if albums := song.Relationships.Albums.Data; len(albums) > 0 {
		applyAlbumMetadata(&albums[0], item)
	}

	if song.Attributes.TrackNumber > 0 {
		item.TrackNumber = mo.Some(song.Attributes.TrackNumber)
	}
	if song.Attributes.DiscNumber > 0 {
		item.DiscNumber = mo.Some(song.Attributes.DiscNumber)
	}
	if song.Attributes.DurationInMillis > 0 {
		item.Duration = mo.Some(float64(song.Attributes.DurationInMillis) / 1000)
	}

	if t, ok := formatThumbnail(song.Attributes.Artwork); ok {
		item.Thumbnails = media.DedupeThumbnails([]media.Thumbnail{t})
	}

	if id, ok := storefront.Lookup(region); ok {
		item.StorefrontID = mo.Some(id)
	} else {
		log.Warnf("unrecognized region code %q", region)
	}

	if song.Attributes.HasLyrics {
		item.Subtitles = e.extractLyrics(region, songID)
	}

	return item, nil
}

// extractRenditions resolves the enhanced HLS asset into normalized
// renditions. A song without streamable assets is not an error: the item
// is still returned with its metadata and no formats.
func (e *Song) extractRenditions(song *resource, item *media.Item) []*manifest.Rendition {
	hls := song.Attributes.ExtendedAssetUrls["enhancedHls"]
	if hls == "" {
		log.Warn("song is unplayable or not available over HLS")
		return nil
	}

	doc, err := e.fetchManifest(hls)
	if err != nil {
		log.Error(err)
		return nil
	}

	renditions := manifest.ParseRenditions(doc, hls)

	if lang := languageCode(song.Attributes.AudioLocale); lang != "" {
		item.Language = lang
		for _, r := range renditions {
			r.Language = lang
		}
	}

	return renditions
}

func mergeQuery(base, extra url.Values) url.Values {
	if base == nil {
		return extra
	}
	for k, vs := range extra {
		for _, v := range vs {
			base.Add(k, v)
		}
	}
	return base
}
