package disneyplus

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cadence-dl/cadence/key"
	"github.com/cadence-dl/cadence/manifest"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func init() {
	viper.Set(key.PlaybackScenario, "ctr-regular")
	viper.Set(key.CatalogRegion, "US")
	viper.Set(key.CatalogLanguage, "en")
}

func TestMatch(t *testing.T) {
	Convey("URL routing", t, func() {
		e := NewVideo()
		So(e.Match("https://www.disneyplus.com/play/f9a3b0a9-51b2-4aee-b1ab-3d22be6e23ca"), ShouldBeTrue)
		So(e.Match("https://disneyplus.com/play/f9a3b0a9-51b2-4aee-b1ab-3d22be6e23ca"), ShouldBeTrue)
		So(e.Match("https://www.disneyplus.com/browse/f9a3b0a9"), ShouldBeFalse)
	})
}

func TestChaptersFromMilestones(t *testing.T) {
	Convey("chaptersFromMilestones", t, func() {
		millis := func(v int) *int { return &v }

		Convey("Readable labels", func() {
			chapters := chaptersFromMilestones([]milestone{
				{Label: "intro_start", OffsetMillis: millis(5000)},
				{Label: "intro_end", OffsetMillis: millis(65000)},
				{Label: "FFEC", OffsetMillis: millis(2400000)},
			})

			So(chapters, ShouldHaveLength, 2)
			So(chapters[0].Title, ShouldEqual, "Intro")
			So(chapters[0].StartTime, ShouldEqual, 5.0)
			So(chapters[0].EndTime, ShouldEqual, 65.0)
			So(chapters[1].Title, ShouldEqual, "Credits")
			So(chapters[1].StartTime, ShouldEqual, 2400.0)
		})

		Convey("Legacy codes, missing intro start defaults to zero", func() {
			chapters := chaptersFromMilestones([]milestone{
				{Label: "LFEI", OffsetMillis: millis(30000)},
			})

			So(chapters, ShouldHaveLength, 1)
			So(chapters[0].StartTime, ShouldEqual, 0.0)
			So(chapters[0].EndTime, ShouldEqual, 30.0)
		})

		Convey("No milestones, no chapters", func() {
			So(chaptersFromMilestones(nil), ShouldBeEmpty)
		})
	})
}

func TestEnrichRenditions(t *testing.T) {
	Convey("enrichRenditions", t, func() {
		Convey("Audio tracks lose DRM and gain backfilled codec and bitrate", func() {
			r := &manifest.Rendition{
				FormatID: "eac-3-atmos",
				VCodec:   "none",
				URL:      "https://cdn.example.com/r/composite_768k_audio.m3u8",
				HasDRM:   true,
			}
			enrichRenditions([]*manifest.Rendition{r})

			So(r.HasDRM, ShouldBeFalse)
			So(r.ACodec, ShouldEqual, "eac3")
			So(r.ABR.MustGet(), ShouldEqual, 768.0)
		})

		Convey("Audio description tracks are deprioritized", func() {
			r := &manifest.Rendition{
				FormatID:   "aac-64k",
				VCodec:     "none",
				FormatNote: "Audio Description",
			}
			enrichRenditions([]*manifest.Rendition{r})

			So(r.LanguagePreference, ShouldEqual, -10)
			So(r.ACodec, ShouldEqual, "aac")
		})

		Convey("Video tracks keep DRM and pick up dynamic range from the URL", func() {
			r := &manifest.Rendition{
				VCodec: "hvc1.2.4",
				URL:    "https://cdn.example.com/HDR_DOLBY_VISION/r/composite_8000k.m3u8",
				HasDRM: true,
				ABR:    mo.Some(8000.0),
			}
			enrichRenditions([]*manifest.Rendition{r})

			So(r.HasDRM, ShouldBeTrue)
			So(r.DynamicRange, ShouldEqual, "DV")
		})
	})
}

func TestVideoExtract(t *testing.T) {
	Convey("Video extraction", t, func(c C) {
		const videoID = "f9a3b0a9-51b2-4aee-b1ab-3d22be6e23ca"

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/explore/v1.4/deeplink", func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `{"data": {"deeplink": {"actions": [
				{"resourceId": "res-1", "partnerFeed": {"dmcContentId": "content-1"}}
			]}}}`)
		})

		mux.HandleFunc("/v7/playback/ctr-regular", func(w http.ResponseWriter, r *http.Request) {
			c.So(r.Method, ShouldEqual, http.MethodPost)
			c.So(r.Header.Get("X-Bamsdk-Client-Id"), ShouldEqual, "disney-svod-3d9324fc")
			_, _ = fmt.Fprintf(w, `{"stream": {
				"sources": [{"priority": 1, "complete": {
					"url": %q,
					"tracking": {"telemetry": {"cdn": "akamai"}}
				}}],
				"editorial": [
					{"label": "intro_start", "offsetMillis": 1000},
					{"label": "intro_end", "offsetMillis": 61000}
				]
			}}`, server.URL+"/master.m3u8")
		})

		mux.HandleFunc("/master.m3u8", func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, "#EXTM3U\n"+
				`#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="eac-3-768k",CHANNELS="6"`+"\n"+
				`#EXT-X-STREAM-INF:AUDIO="eac-3-768k",CODECS="ec-3",BANDWIDTH=768000`+"\n"+
				"r/composite_768k_audio.m3u8\n"+
				"#EXT-X-DISCONTINUITY\n"+
				`#EXT-X-STREAM-INF:AUDIO="spliced",CODECS="ec-3",BANDWIDTH=1`+"\n"+
				"spliced.m3u8\n")
		})

		mux.HandleFunc("/svc/content/DmcVideo/version/5.1/region/US/audience/false/maturity/1899/language/en/contentId/content-1",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"data": {"DmcVideo": {"video": {
					"programType": "episode",
					"seriesId": "series-1",
					"episodeNumber": 3,
					"text": {
						"title": {"full": {
							"program": {"default": {"content": "Chapter 3"}},
							"series": {"default": {"content": "Some Series"}}
						}},
						"description": {"full": {"program": {"default": {"content": "An episode."}}}}
					},
					"participant": {"Actor": [{"displayName": "Lead Actor"}]},
					"ratings": [{"value": "TV-14"}],
					"releases": [{"releaseDate": "2019-12-06"}]
				}}}}`)
			})

		e := NewVideo()
		e.apiRoot = server.URL
		e.playbackURL = server.URL
		e.contentRoot = server.URL
		e.client = server.Client()

		item, err := e.Extract("https://www.disneyplus.com/play/" + videoID)
		So(err, ShouldBeNil)

		Convey("Splice point truncates the manifest", func() {
			So(item.Renditions, ShouldHaveLength, 1)
		})

		Convey("Renditions carry the CDN id and source preference", func() {
			r := item.Renditions[0]
			So(r.FormatID, ShouldEqual, "akamai-eac-3-768k")
			So(r.Preference, ShouldEqual, -1)
			So(r.ACodec, ShouldEqual, "ec-3")
			So(r.HasDRM, ShouldBeFalse)
		})

		Convey("Editorial metadata is applied", func() {
			So(item.Title, ShouldEqual, "Chapter 3")
			So(item.Episode, ShouldEqual, "Chapter 3")
			So(item.Series, ShouldEqual, "Some Series")
			So(item.EpisodeNumber.MustGet(), ShouldEqual, 3)
			So(item.Cast, ShouldResemble, []string{"Lead Actor"})
			So(item.AgeLimit.MustGet(), ShouldEqual, 14)
			So(item.ReleaseDate, ShouldEqual, "20191206")
		})

		Convey("Chapters come from the editorial milestones", func() {
			So(item.Chapters, ShouldHaveLength, 1)
			So(item.Chapters[0].Title, ShouldEqual, "Intro")
		})

		Convey("API authorization is suppressed for the host download", func() {
			So(item.Headers["Authorization"], ShouldBeEmpty)
		})
	})
}

func TestAuthError(t *testing.T) {
	Convey("A 401 surfaces the service's own description", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = fmt.Fprint(w, `{"errors": [{"description": "auth.expired"}]}`)
		}))
		defer server.Close()

		e := NewVideo()
		e.apiRoot = server.URL
		e.client = server.Client()

		_, err := e.Extract("https://www.disneyplus.com/play/f9a3b0a9-51b2-4aee-b1ab-3d22be6e23ca")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "authentication token expired")
	})
}
