// Package storefront maps ISO-3166 region codes to vendor storefront identifiers.
package storefront

import (
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Lookup resolves a two-letter region code to its storefront identifier.
// Matching is case-insensitive. An unknown code is not an error: catalog
// calls still work without a storefront id, the caller just loses the
// numeric tag.
func Lookup(region string) (int, bool) {
	id, ok := table[strings.ToUpper(region)]
	return id, ok
}

// Resolve returns the storefront identifier for a region when known.
func Resolve(region string) mo.Option[int] {
	if id, ok := Lookup(region); ok {
		return mo.Some(id)
	}
	return mo.None[int]()
}

// Suggest returns the known region code closest to the given one,
// for use in "did you mean" warnings.
func Suggest(region string) string {
	region = strings.ToUpper(region)
	return lo.MinBy(lo.Keys(table), func(a, b string) bool {
		return levenshtein.Distance(region, a) < levenshtein.Distance(region, b)
	})
}

// Regions returns all known region codes.
func Regions() []string {
	return lo.Keys(table)
}
