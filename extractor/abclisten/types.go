package abclisten

// Typed views of the GraphQL response shapes the mappers read.

type richText struct {
	PlainText string `json:"plainText"`
}

type imageLink struct {
	CropInfo []struct {
		Value []struct {
			URL string `json:"url"`
		} `json:"value"`
	} `json:"cropInfo"`
}

type audioRendition struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
}

type episodeNode struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	TeaserTitle      string `json:"teaserTitle"`
	ShortTeaserTitle string `json:"shortTeaserTitle"`
	SortTitle        string `json:"sortTitle"`

	PublicationDate string `json:"publicationDate"`
	FirstUpdated    string `json:"firstUpdated"`
	LastUpdated     string `json:"lastUpdated"`

	Caption richText `json:"caption"`

	// Some episodes report no or broken durations; absent decodes to nil.
	Duration *float64 `json:"duration"`

	Renditions    []audioRendition `json:"renditions"`
	ThumbnailLink *imageLink       `json:"thumbnailLink"`
}

type programNode struct {
	Title            string `json:"title"`
	TeaserTitle      string `json:"teaserTitle"`
	ShortTeaserTitle string `json:"shortTeaserTitle"`
	SortTitle        string `json:"sortTitle"`

	Description richText `json:"description"`

	ProgramContentCollection struct {
		Document []struct {
			Items []episodeNode `json:"items"`
		} `json:"document"`
	} `json:"programContentCollection"`

	ThumbnailLink         *imageLink `json:"thumbnailLink"`
	AlternateProgramImage struct {
		Document []imageLink `json:"document"`
	} `json:"alternateProgramImage"`
}
