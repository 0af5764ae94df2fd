package extractor

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestForURL(t *testing.T) {
	Convey("ForURL", t, func() {
		cases := map[string]string{
			"https://music.apple.com/us/song/numb/1440843092":                               "applemusic",
			"https://music.apple.com/us/album/joyride/1754468855?i=1754468856":              "applemusic",
			"https://music.apple.com/us/album/joyride/1754468855":                           "applemusic:album",
			"https://music.apple.com/tr/artist/daft-punk/5468295/see-all?section=singles":   "applemusic:seeall",
			"https://www.abc.net.au/listen/audiobooks/dreams-from-my-father":                "abclisten",
			"https://www.abc.net.au/listen/audiobooks/_/chapter-2/13391438":                 "abclisten:episode",
			"https://www.disneyplus.com/play/f9a3b0a9-51b2-4aee-b1ab-3d22be6e23ca":          "disneyplus",
			"https://play.itunes.apple.com/WebObjects/MZPlay.woa/hls/playlist.m3u8?a=96549": "itunes",
		}

		for url, name := range cases {
			e, ok := ForURL(url)
			So(ok, ShouldBeTrue)
			So(e.Name(), ShouldEqual, name)
		}

		Convey("Unsupported URLs match nothing", func() {
			_, ok := ForURL("https://example.com/watch?v=1")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestByName(t *testing.T) {
	Convey("ByName", t, func() {
		e, ok := ByName("applemusic:album")
		So(ok, ShouldBeTrue)
		So(e.Name(), ShouldEqual, "applemusic:album")

		_, ok = ByName("unknown")
		So(ok, ShouldBeFalse)
	})
}
