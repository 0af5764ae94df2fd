package applemusic

import (
	"fmt"
	"strings"

	"github.com/cadence-dl/cadence/key"
	"github.com/cadence-dl/cadence/media"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// formatThumbnail rewrites an artwork URL template to the configured
// dimensions, extension and quality. The catalog hands out templated
// links whose final path segment encodes all four.
func formatThumbnail(art *artwork) (media.Thumbnail, bool) {
	if art == nil || art.URL == "" {
		return media.Thumbnail{}, false
	}

	base := art.URL
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[:i]
	}

	t := media.Thumbnail{
		URL: fmt.Sprintf("%s/%dx%d-%d.%s",
			base,
			viper.GetInt(key.ThumbnailMaxWidth),
			viper.GetInt(key.ThumbnailMaxHeight),
			viper.GetInt(key.ThumbnailQuality),
			viper.GetString(key.ThumbnailExtension)),
	}

	if art.Width > 0 {
		t.Width = mo.Some(art.Width)
	}
	if art.Height > 0 {
		t.Height = mo.Some(art.Height)
	}

	return t, true
}

// applyCommonMetadata fills the fields shared by song and album resources.
func applyCommonMetadata(res *resource, item *media.Item) {
	attrs := &res.Attributes

	item.Title = attrs.Name
	if attrs.ArtistName != "" {
		item.Artists = []string{attrs.ArtistName}
	}
	item.ReleaseDate = media.UnifiedDate(attrs.ReleaseDate)
	item.Genres = attrs.GenreNames

	switch attrs.ContentRating {
	case "explicit":
		item.AgeLimit = mo.Some(18)
	case "clean":
		item.AgeLimit = mo.Some(0)
	}

	if attrs.IsAppleDigitalMaster != nil {
		item.DigitalMaster = mo.Some(*attrs.IsAppleDigitalMaster)
	} else if attrs.IsMasteredForItunes != nil {
		item.DigitalMaster = mo.Some(*attrs.IsMasteredForItunes)
	}
}

// applyAlbumMetadata fills album-level fields from an album resource.
func applyAlbumMetadata(album *resource, item *media.Item) {
	if album == nil {
		return
	}

	attrs := &album.Attributes

	if attrs.ArtistName != "" {
		item.AlbumArtists = []string{attrs.ArtistName}
	}
	item.Description = media.FirstTitle(attrs.EditorialNotes.Standard, attrs.EditorialNotes.Short)
	item.AlbumID = attrs.PlayParams.ID
	item.UPC = attrs.UPC
	item.RecordLabel = attrs.RecordLabel
	item.Copyright = attrs.Copyright
	if attrs.TrackCount > 0 {
		item.TrackCount = mo.Some(attrs.TrackCount)
	}

	switch {
	case attrs.IsCompilation:
		item.AlbumType = "Compilation"
	case attrs.IsSingle:
		item.AlbumType = "Single"
	}
}

// creditArtists flattens the nested credits relationship into the common
// credit-artist shape.
func creditArtists(res *resource) []media.CreditArtist {
	var artists []media.CreditArtist
	for _, c := range res.Relationships.Credits.Data {
		for _, person := range c.Relationships.CreditArtists.Data {
			artists = append(artists, media.CreditArtist{
				Name:  person.Attributes.Name,
				Roles: person.Attributes.RoleNames,
			})
		}
	}
	return artists
}

func resourceIDs(list resourceList) []string {
	ids := make([]string, 0, len(list.Data))
	for _, r := range list.Data {
		if r.ID != "" {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// languageCode filters out the BCP 47 tags that mean "no meaningful
// language": per the RFC, omitting them is preferable when allowed.
func languageCode(code string) string {
	switch code {
	case "zxx", "und", "mul", "mis":
		return ""
	}
	return code
}
