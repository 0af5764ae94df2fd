package itunes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cadence-dl/cadence/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	viper.Set(key.ThumbnailMaxWidth, 12000)
	viper.Set(key.ThumbnailMaxHeight, 12000)
	viper.Set(key.ThumbnailExtension, "jpg")
}

func TestMatch(t *testing.T) {
	Convey("URL routing", t, func() {
		e := NewPlaylist()
		So(e.Match("https://play.itunes.apple.com/WebObjects/MZPlay.woa/hls/playlist.m3u8?cc=GB&a=965491522&id=236366768"), ShouldBeTrue)
		So(e.Match("https://play.itunes.apple.com/WebObjects/MZPlay.woa/hls/playlist.m3u8?a=965491522"), ShouldBeTrue)
		So(e.Match("https://play.itunes.apple.com/WebObjects/MZPlay.woa/hls/playlist.m3u8?cc=GB"), ShouldBeFalse)
	})
}

func TestPlaylistExtract(t *testing.T) {
	Convey("Playlist extraction", t, func() {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = fmt.Fprint(w,
				`#EXT-X-SESSION-DATA:DATA-ID="com.apple.hls.title",VALUE="Some Show"`+"\n"+
					`#EXT-X-SESSION-DATA:DATA-ID="com.apple.hls.episode-title",VALUE="Pilot"`+"\n"+
					`#EXT-X-SESSION-DATA:DATA-ID="com.apple.hls.rating-tag",VALUE="TV-14"`+"\n"+
					`#EXT-X-SESSION-DATA:DATA-ID="com.apple.hls.release-date",VALUE="2013-05-28"`+"\n"+
					`#EXT-X-SESSION-DATA:DATA-ID="com.apple.hls.poster",VALUE="https://cdn.example.com/{w}x{h}bb.{f}"`+"\n"+
					`#EXT-X-STREAM-INF:AUDIO="aud",CODECS="avc1.64001f,mp4a.40.2",BANDWIDTH=2000000`+"\n"+
					"variant.m3u8\n")
		}))
		defer server.Close()

		e := NewPlaylist()
		e.playlistURL = server.URL
		e.client = server.Client()

		item, err := e.Extract("https://play.itunes.apple.com/WebObjects/MZPlay.woa/hls/playlist.m3u8?cc=GB&a=42&dsid=12345")
		So(err, ShouldBeNil)

		Convey("The account-linked dsid parameter is stripped", func() {
			So(gotQuery, ShouldNotContainSubstring, "dsid")
			So(gotQuery, ShouldContainSubstring, "cc=GB")
		})

		Convey("Session data becomes the metadata record", func() {
			So(item.ID, ShouldEqual, "42")
			So(item.Series, ShouldEqual, "Some Show")
			So(item.Title, ShouldEqual, "Pilot")
			So(item.Episode, ShouldEqual, "Pilot")
			So(item.AgeLimit.MustGet(), ShouldEqual, 14)
			So(item.ReleaseDate, ShouldEqual, "20130528")
		})

		Convey("The poster template is expanded", func() {
			So(item.Thumbnails, ShouldHaveLength, 1)
			So(item.Thumbnails[0].URL, ShouldEqual, "https://cdn.example.com/12000x12000bb.jpg")
		})

		Convey("Every rendition is marked encrypted", func() {
			So(item.Renditions, ShouldHaveLength, 1)
			So(item.Renditions[0].HasDRM, ShouldBeTrue)
			So(item.Renditions[0].Ext, ShouldEqual, "mp4")
		})
	})
}
