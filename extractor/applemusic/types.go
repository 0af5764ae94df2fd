package applemusic

// Typed views of the catalog API response shapes. Only the fields the
// mappers read are declared; everything else in the vendor payload is
// ignored on decode.

type apiEnvelope struct {
	Data []resource `json:"data"`
	Next string     `json:"next"`
}

type resource struct {
	ID            string        `json:"id"`
	Attributes    attributes    `json:"attributes"`
	Relationships relationships `json:"relationships"`
}

type attributes struct {
	Name          string   `json:"name"`
	ArtistName    string   `json:"artistName"`
	AlbumName     string   `json:"albumName"`
	ComposerName  string   `json:"composerName"`
	ReleaseDate   string   `json:"releaseDate"`
	ContentRating string   `json:"contentRating"`
	GenreNames    []string `json:"genreNames"`
	URL           string   `json:"url"`

	// The digital-master flag was renamed upstream at some point, so
	// either may be present.
	IsAppleDigitalMaster *bool `json:"isAppleDigitalMaster"`
	IsMasteredForItunes  *bool `json:"isMasteredForItunes"`

	IsCompilation bool `json:"isCompilation"`
	IsSingle      bool `json:"isSingle"`

	DurationInMillis int    `json:"durationInMillis"`
	TrackNumber      int    `json:"trackNumber"`
	TrackCount       int    `json:"trackCount"`
	DiscNumber       int    `json:"discNumber"`
	ISRC             string `json:"isrc"`
	UPC              string `json:"upc"`
	RecordLabel      string `json:"recordLabel"`
	Copyright        string `json:"copyright"`
	HasLyrics        bool   `json:"hasLyrics"`
	AudioLocale      string `json:"audioLocale"`
	TTML             string `json:"ttml"`

	EditorialNotes struct {
		Standard string `json:"standard"`
		Short    string `json:"short"`
	} `json:"editorialNotes"`

	PlayParams struct {
		ID   string `json:"id"`
		Kind string `json:"kind"`
	} `json:"playParams"`

	Artwork           *artwork                 `json:"artwork"`
	ExtendedAssetUrls map[string]string        `json:"extendedAssetUrls"`
	EditorialVideo    map[string]editorialClip `json:"editorialVideo"`
}

type artwork struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type editorialClip struct {
	Video        string   `json:"video"`
	PreviewFrame *artwork `json:"previewFrame"`
}

type relationships struct {
	Albums  resourceList `json:"albums"`
	Artists resourceList `json:"artists"`
	Genres  resourceList `json:"genres"`
	Tracks  resourceList `json:"tracks"`

	Credits struct {
		Data []credit `json:"data"`
	} `json:"credits"`
}

type resourceList struct {
	Data []resource `json:"data"`
}

type credit struct {
	Relationships struct {
		CreditArtists struct {
			Data []struct {
				Attributes struct {
					Name      string   `json:"name"`
					RoleNames []string `json:"roleNames"`
				} `json:"attributes"`
			} `json:"data"`
		} `json:"credit-artists"`
	} `json:"relationships"`
}
