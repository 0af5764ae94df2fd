// Package extractor routes input URLs to the vendor extractor that can
// handle them.
package extractor

import (
	"github.com/cadence-dl/cadence/extractor/abclisten"
	"github.com/cadence-dl/cadence/extractor/applemusic"
	"github.com/cadence-dl/cadence/extractor/disneyplus"
	"github.com/cadence-dl/cadence/extractor/itunes"
	"github.com/cadence-dl/cadence/media"
	"github.com/samber/lo"
)

// Extractor turns a supported URL into a normalized catalog item.
type Extractor interface {
	Name() string
	Match(url string) bool
	Extract(url string) (*media.Item, error)
}

// All returns every registered extractor.
func All() []Extractor {
	return []Extractor{
		applemusic.NewSong(),
		applemusic.NewAlbum(),
		applemusic.NewSeeAll(),
		abclisten.NewEpisode(),
		abclisten.NewProgram(),
		disneyplus.NewVideo(),
		itunes.NewPlaylist(),
	}
}

// Names lists the registered extractor names.
func Names() []string {
	return lo.Map(All(), func(e Extractor, _ int) string {
		return e.Name()
	})
}

// ForURL finds the extractor claiming the given URL.
func ForURL(rawURL string) (Extractor, bool) {
	return lo.Find(All(), func(e Extractor) bool {
		return e.Match(rawURL)
	})
}

// ByName finds an extractor by its exact name.
func ByName(name string) (Extractor, bool) {
	return lo.Find(All(), func(e Extractor) bool {
		return e.Name() == name
	})
}
