// Package media defines the normalized catalog record handed to the host
// downloader, plus the mapping policies shared by every extractor.
package media

import (
	"github.com/cadence-dl/cadence/manifest"
	"github.com/samber/mo"
)

// Kind tags what a catalog item describes.
type Kind string

const (
	KindSong     Kind = "song"
	KindAlbum    Kind = "album"
	KindEpisode  Kind = "episode"
	KindProgram  Kind = "program"
	KindVideo    Kind = "video"
	KindPlaylist Kind = "playlist"
)

// Item is the common media record. Field names follow the host downloader's
// schema exactly: the host performs no semantic validation beyond shape
// checks, so a misnamed field silently drops data.
type Item struct {
	ID          string `json:"id"`
	Kind        Kind   `json:"media_type,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Duration in seconds.
	Duration mo.Option[float64] `json:"duration,omitempty"`

	Language     string `json:"language,omitempty"`
	ReleaseDate  string `json:"release_date,omitempty"`
	ModifiedDate string `json:"modified_date,omitempty"`
	AgeLimit     mo.Option[int] `json:"age_limit,omitempty"`

	Thumbnails []Thumbnail            `json:"thumbnails,omitempty"`
	Renditions []*manifest.Rendition  `json:"formats,omitempty"`
	Subtitles  map[string][]Subtitle  `json:"subtitles,omitempty"`
	Chapters   []Chapter              `json:"chapters,omitempty"`
	Headers    map[string]string      `json:"http_headers,omitempty"`

	Artists      []string `json:"artists,omitempty"`
	AlbumArtists []string `json:"album_artists,omitempty"`
	Genres       []string `json:"genres,omitempty"`

	Album       string `json:"album,omitempty"`
	AlbumID     string `json:"album_id,omitempty"`
	AlbumType   string `json:"album_type,omitempty"`
	Track       string `json:"track,omitempty"`
	TrackID     string `json:"track_id,omitempty"`
	TrackNumber mo.Option[int] `json:"track_number,omitempty"`
	TrackCount  mo.Option[int] `json:"track_count,omitempty"`
	DiscNumber  mo.Option[int] `json:"disc_number,omitempty"`
	Composer    string `json:"composer,omitempty"`

	Series        string `json:"series,omitempty"`
	SeriesID      string `json:"series_id,omitempty"`
	Season        string `json:"season,omitempty"`
	SeasonID      string `json:"season_id,omitempty"`
	SeasonNumber  mo.Option[int] `json:"season_number,omitempty"`
	Episode       string `json:"episode,omitempty"`
	EpisodeNumber mo.Option[int] `json:"episode_number,omitempty"`
	Creators      []string `json:"creators,omitempty"`
	Cast          []string `json:"cast,omitempty"`

	ISRC         string              `json:"isrc,omitempty"`
	UPC          string              `json:"upc,omitempty"`
	RecordLabel  string              `json:"record_label,omitempty"`
	Copyright    string              `json:"copyright,omitempty"`
	RegionCode   string              `json:"region_code,omitempty"`
	StorefrontID mo.Option[int]      `json:"storefront_id,omitempty"`
	Credits      Credits             `json:"credits,omitempty"`
	ArtistIDs    []string            `json:"artist_ids,omitempty"`
	GenreIDs     []string            `json:"genre_ids,omitempty"`
	DigitalMaster mo.Option[bool]    `json:"is_apple_digital_master,omitempty"`

	// Entries holds child items by reference: an album or program owns
	// its tracks/episodes as URLs or ids resolved lazily by the host,
	// never embedded records.
	Entries []Entry `json:"entries,omitempty"`
}

// Entry is a child reference of a playlist-like item. Metadata already
// known at the parent level rides along so flat listings stay useful.
type Entry struct {
	ID    string `json:"id,omitempty"`
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`

	// Item carries extra per-entry metadata for catalogs that return it
	// inline. Nil when the reference alone is all that is known.
	Item *Item `json:"info,omitempty"`
}

// Subtitle is one subtitle/lyrics track, either inline data or a URL.
type Subtitle struct {
	Data string `json:"data,omitempty"`
	URL  string `json:"url,omitempty"`
	Ext  string `json:"ext,omitempty"`
	Name string `json:"name,omitempty"`
}

// Chapter is a named time range within an item.
type Chapter struct {
	Title     string  `json:"title"`
	StartTime float64 `json:"start_time"`

	// EndTime zero means the chapter runs to the end of the item.
	EndTime float64 `json:"end_time,omitempty"`
}

// FirstTitle returns the first non-empty candidate of an ordered fallback
// chain. Candidates are never merged: the chain picks exactly one.
func FirstTitle(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
