package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cadence-dl/cadence/filesystem"
	"github.com/cadence-dl/cadence/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.TokenCacheEnable, true)
}

func TestRequest(t *testing.T) {
	Convey("Request", t, func() {
		So(ClearTokens(), ShouldBeNil)

		Convey("A stale token is refreshed once and the call retried", func() {
			So(cache.Set("testvendor", "stale"), ShouldBeNil)

			var calls int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				if r.Header.Get("Authorization") != "Bearer fresh" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				_, _ = w.Write([]byte("payload"))
			}))
			defer server.Close()

			var scrapes int
			s := New("testvendor", func(*http.Client) (string, error) {
				scrapes++
				return "fresh", nil
			})
			s.Client = server.Client()

			resp, err := s.Request(Params{URL: server.URL})
			So(err, ShouldBeNil)
			So(string(resp.Body), ShouldEqual, "payload")
			So(scrapes, ShouldEqual, 1)
			So(calls, ShouldEqual, 2)

			Convey("And the cache now holds the minted token", func() {
				So(cache.Get("testvendor").MustGet(), ShouldEqual, "fresh")
			})
		})

		Convey("A second unauthorized response is final", func() {
			So(cache.Set("testvendor", "stale"), ShouldBeNil)

			var calls int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			s := New("testvendor", func(*http.Client) (string, error) {
				return "fresh", nil
			})
			s.Client = server.Client()

			_, err := s.Request(Params{URL: server.URL})
			So(err, ShouldNotBeNil)
			So(calls, ShouldEqual, 2)
		})

		Convey("Accepted error statuses are handed back as-is", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"errors":[]}`))
			}))
			defer server.Close()

			s := New("testvendor", func(*http.Client) (string, error) {
				return "fresh", nil
			})
			s.Client = server.Client()

			resp, err := s.Request(Params{URL: server.URL, AcceptStatuses: []int{http.StatusNotFound}})
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			So(string(resp.Body), ShouldEqual, `{"errors":[]}`)
		})

		Convey("An explicit empty header value suppresses the header", func() {
			var auth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				auth = r.Header.Get("Authorization")
				_, _ = w.Write([]byte("{}"))
			}))
			defer server.Close()

			s := New("testvendor", func(*http.Client) (string, error) {
				return "fresh", nil
			})
			s.Client = server.Client()

			_, err := s.Request(Params{URL: server.URL, Headers: map[string]string{"Authorization": ""}})
			So(err, ShouldBeNil)
			So(auth, ShouldBeEmpty)
		})
	})
}

func TestScrapeBearerToken(t *testing.T) {
	Convey("ScrapeBearerToken", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><head>` +
				`<script type="module" src="/assets/index-legacy-abc123.js"></script>` +
				`</head><body></body></html>`))
		})
		mux.HandleFunc("/assets/index-legacy-abc123.js", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`const t="eyJhbGciOiJFUzI1NiJ9.payload.sig";`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		Convey("Extracts the token embedded in the referenced script", func() {
			token, err := ScrapeBearerToken(server.Client(), server.URL+"/")
			So(err, ShouldBeNil)
			So(token, ShouldEqual, "eyJhbGciOiJFUzI1NiJ9.payload.sig")
		})

		Convey("Fails cleanly when the page references no script asset", func() {
			empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html></html>"))
			}))
			defer empty.Close()

			_, err := ScrapeBearerToken(empty.Client(), empty.URL+"/")
			So(err, ShouldNotBeNil)
		})
	})
}
