// Package applemusic extracts songs, albums and artist listings from the
// music storefront's private catalog API.
package applemusic

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/cadence-dl/cadence/session"
)

const (
	vendor     = "applemusic"
	perPageMax = 100
)

var (
	// Media endpoints reject requests carrying API authorization, so both
	// token layers are suppressed. User endpoints only drop the
	// account-bound headers.
	suppressAuth     = map[string]string{"Authorization": "", "Media-User-Token": "", "X-Dsid": ""}
	suppressUserAuth = map[string]string{"Media-User-Token": "", "X-Dsid": ""}
)

// base carries what every storefront extractor needs: the vendor session
// and the endpoint roots, overridable in tests.
type base struct {
	session  *session.Session
	apiRoot  string
	entryURL string
}

func newBase() base {
	entryURL := "https://beta.music.apple.com/"

	s := session.New(vendor, func(client *http.Client) (string, error) {
		return session.ScrapeBearerToken(client, entryURL)
	})
	s.BaseHeaders = map[string]string{"Origin": "https://music.apple.com"}

	return base{
		session:  s,
		apiRoot:  "https://amp-api.music.apple.com",
		entryURL: entryURL,
	}
}

// apiJSON performs an authorized catalog call and decodes the envelope.
// Vendor error statuses listed in accept are decoded too: the catalog
// reports a missing id through an empty data array, not a status alone.
func (b base) apiJSON(path string, query url.Values, headers map[string]string, accept []int, out any) error {
	return b.session.JSON(session.Params{
		URL:            b.apiRoot + path,
		Query:          query,
		Headers:        headers,
		AcceptStatuses: accept,
	}, out)
}

// fetchManifest downloads a manifest document from a media CDN URL.
func (b base) fetchManifest(manifestURL string) (string, error) {
	resp, err := b.session.Request(session.Params{
		URL:     manifestURL,
		Headers: suppressAuth,
	})
	if err != nil {
		return "", fmt.Errorf("manifest: %w", err)
	}

	return string(resp.Body), nil
}

// langQuery propagates the "l" language override from the input URL, so a
// request for a different-language catalog view stays in that language.
func langQuery(rawURL string) url.Values {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}

	if lang := u.Query().Get("l"); lang != "" {
		return url.Values{"l": {lang}}
	}

	return nil
}
