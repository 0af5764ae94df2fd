package manifest

import "github.com/samber/mo"

// Rendition is one playable stream variant extracted from a manifest,
// shaped to the host downloader's format schema.
type Rendition struct {
	FormatID     string
	URL          string
	ManifestURL  string
	Ext          string
	Protocol     string
	ACodec       string
	VCodec       string
	DynamicRange string

	// Bitrates in kbps. TBR and ABR carry the same value: the manifests
	// in scope are audio-only, so the total bitrate is the audio bitrate.
	TBR mo.Option[float64]
	ABR mo.Option[float64]

	ASR           mo.Option[int]
	AudioChannels mo.Option[int]
	FormatNote    string
	Language      string
	HasDRM        bool

	// Sort hints for the host's format selector. Larger wins.
	Preference         int
	LanguagePreference int
}
