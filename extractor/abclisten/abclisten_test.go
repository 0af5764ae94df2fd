package abclisten

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMatch(t *testing.T) {
	Convey("URL routing", t, func() {
		program := NewProgram()
		episode := NewEpisode()

		So(program.Match("https://www.abc.net.au/listen/audiobooks/dreams-from-my-father"), ShouldBeTrue)
		So(program.Match("https://www.abc.net.au/listen/audiobooks/dreams-from-my-father/"), ShouldBeTrue)
		So(program.Match("https://www.abc.net.au/listen/audiobooks/_/chapter-2/13391438"), ShouldBeFalse)

		So(episode.Match("https://www.abc.net.au/listen/audiobooks/_/chapter-2/13391438"), ShouldBeTrue)
		So(episode.Match("https://www.abc.net.au/listen/audiobooks/dreams-from-my-father"), ShouldBeFalse)
	})
}

func TestEpisodeExtract(t *testing.T) {
	Convey("Episode extraction", t, func(c C) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.So(r.Header.Get("X-Api-Key"), ShouldNotBeEmpty)
			c.So(r.URL.Query().Get("operationName"), ShouldEqual, "GetEpisodeById")

			var vars map[string]any
			c.So(json.Unmarshal([]byte(r.URL.Query().Get("variables")), &vars), ShouldBeNil)
			c.So(vars["id"], ShouldEqual, "13391438")

			_, _ = fmt.Fprint(w, `{"data": {"episode": {
				"id": "13391438",
				"title": null,
				"teaserTitle": "How to Use This Book",
				"sortTitle": "how-to-use-this-book",
				"firstUpdated": "2021-06-21T00:30:00+10:00",
				"lastUpdated": "2021-06-21T01:00:00+10:00",
				"caption": {"plainText": "A short chapter."},
				"duration": 90,
				"renditions": [{"url": "https://cdn.example.com/ep.mp3", "contentType": "audio/mpeg"}],
				"thumbnailLink": {"cropInfo": [{"value": [
					{"url": "https://cdn.example.com/a.jpg?impolicy=wcms"},
					{"url": "https://cdn.example.com/a.jpg?width=600"}
				]}]}
			}}}`)
		}))
		defer server.Close()

		e := NewEpisode()
		e.apiURL = server.URL
		e.client = server.Client()

		item, err := e.Extract("https://www.abc.net.au/listen/audiobooks/_/chapter-2/13391438")
		So(err, ShouldBeNil)

		Convey("Title falls back past the null candidate", func() {
			So(item.Title, ShouldEqual, "How to Use This Book")
		})

		Convey("Dates are normalized to the compact form", func() {
			So(item.ReleaseDate, ShouldEqual, "20210621")
			So(item.ModifiedDate, ShouldEqual, "20210621")
		})

		Convey("Renditions are audio-only with an inferred extension", func() {
			So(item.Renditions, ShouldHaveLength, 1)
			So(item.Renditions[0].Ext, ShouldEqual, "mp3")
			So(item.Renditions[0].VCodec, ShouldEqual, "none")
			So(item.Renditions[0].HasDRM, ShouldBeFalse)
		})

		Convey("Thumbnails deduplicate on the stripped URL", func() {
			So(item.Thumbnails, ShouldHaveLength, 1)
			So(item.Thumbnails[0].URL, ShouldEqual, "https://cdn.example.com/a.jpg")
		})
	})
}

func TestEpisodeNotFound(t *testing.T) {
	Convey("A null episode node is a not-found error", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `{"data": {"episode": null}}`)
		}))
		defer server.Close()

		e := NewEpisode()
		e.apiURL = server.URL
		e.client = server.Client()

		_, err := e.Extract("https://www.abc.net.au/listen/audiobooks/_/gone/999")
		So(err, ShouldNotBeNil)
	})
}

func TestMimetypeExt(t *testing.T) {
	Convey("mimetypeExt", t, func() {
		So(mimetypeExt("audio/mpeg"), ShouldEqual, "mp3")
		So(mimetypeExt("audio/mp4"), ShouldEqual, "m4a")
		So(mimetypeExt("audio/flac"), ShouldEqual, "flac")
		So(mimetypeExt("garbage"), ShouldBeEmpty)
	})
}
