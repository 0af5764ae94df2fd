package disneyplus

// Typed views of the three bamgrid response shapes.

type deeplinkEnvelope struct {
	Data struct {
		Deeplink struct {
			Actions []struct {
				ResourceID  string `json:"resourceId"`
				PartnerFeed struct {
					DmcContentID string `json:"dmcContentId"`
				} `json:"partnerFeed"`
			} `json:"actions"`
		} `json:"deeplink"`
	} `json:"data"`
}

type playbackEnvelope struct {
	Stream struct {
		Sources []struct {
			Priority *int `json:"priority"`
			Complete struct {
				URL      string `json:"url"`
				Tracking struct {
					Telemetry struct {
						CDN string `json:"cdn"`
					} `json:"telemetry"`
				} `json:"tracking"`
			} `json:"complete"`
		} `json:"sources"`

		Editorial []milestone `json:"editorial"`
	} `json:"stream"`
}

type milestone struct {
	Label        string `json:"label"`
	OffsetMillis *int   `json:"offsetMillis"`
}

type dmcEnvelope struct {
	Data struct {
		DmcVideo struct {
			Video *dmcVideo `json:"video"`
		} `json:"DmcVideo"`
	} `json:"data"`
}

type localizedText struct {
	Default struct {
		Content string `json:"content"`
	} `json:"default"`
}

type dmcVideo struct {
	ProgramType           string `json:"programType"`
	SeriesID              string `json:"seriesId"`
	SeasonID              string `json:"seasonId"`
	SeasonSequenceNumber  *int   `json:"seasonSequenceNumber"`
	EpisodeNumber         *int   `json:"episodeNumber"`
	EpisodeSequenceNumber *int   `json:"episodeSequenceNumber"`

	Text struct {
		Title struct {
			Full map[string]localizedText `json:"full"`
		} `json:"title"`
		Description struct {
			Full   map[string]localizedText `json:"full"`
			Medium map[string]localizedText `json:"medium"`
			Brief  map[string]localizedText `json:"brief"`
		} `json:"description"`
	} `json:"text"`

	Participant map[string][]struct {
		DisplayName string `json:"displayName"`
	} `json:"participant"`

	TypedGenres []struct {
		Name string `json:"name"`
	} `json:"typedGenres"`

	Ratings []struct {
		Value string `json:"value"`
	} `json:"ratings"`

	Releases []struct {
		ReleaseDate string `json:"releaseDate"`
	} `json:"releases"`

	Image struct {
		Thumbnail map[string]struct {
			Program struct {
				Default struct {
					URL          string `json:"url"`
					MasterWidth  int    `json:"masterWidth"`
					MasterHeight int    `json:"masterHeight"`
				} `json:"default"`
			} `json:"program"`
		} `json:"thumbnail"`
	} `json:"image"`
}
