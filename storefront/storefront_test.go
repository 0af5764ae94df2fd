package storefront

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Is case-insensitive", func() {
			lower, okLower := Lookup("us")
			upper, okUpper := Lookup("US")
			So(okLower, ShouldBeTrue)
			So(okUpper, ShouldBeTrue)
			So(lower, ShouldEqual, upper)
			So(upper, ShouldEqual, 143441)
		})

		Convey("Unknown codes signal absence without failing", func() {
			_, ok := Lookup("zz")
			So(ok, ShouldBeFalse)
			So(Resolve("zz").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestSuggest(t *testing.T) {
	Convey("Suggest", t, func() {
		Convey("Exact-distance neighbors are proposed", func() {
			// "UX" is one edit away from several codes; any valid code is acceptable
			got := Suggest("ux")
			_, ok := Lookup(got)
			So(ok, ShouldBeTrue)
		})
	})
}

func TestRegions(t *testing.T) {
	Convey("Regions", t, func() {
		So(len(Regions()), ShouldBeGreaterThan, 150)
	})
}
