package session

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	scriptAssetRe = regexp.MustCompile(`/(assets/index-legacy-[^/]+\.js)`)
	bearerTokenRe = regexp.MustCompile(`"(eyJh[^"]+)`)
)

// ScrapeBearerToken performs the two-step anonymous token acquisition:
// fetch the vendor's entry page, locate the bundled script asset referenced
// by it, then extract the embedded bearer token from that script.
func ScrapeBearerToken(client *http.Client, entryURL string) (string, error) {
	page, err := fetch(client, entryURL)
	if err != nil {
		return "", fmt.Errorf("entry page: %w", err)
	}

	assetPath := findScriptAsset(page)
	if assetPath == "" {
		return "", fmt.Errorf("no script asset reference found at %s", entryURL)
	}

	assetURL, err := resolveAsset(entryURL, assetPath)
	if err != nil {
		return "", err
	}

	script, err := fetch(client, assetURL)
	if err != nil {
		return "", fmt.Errorf("script asset: %w", err)
	}

	m := bearerTokenRe.FindStringSubmatch(script)
	if m == nil {
		return "", fmt.Errorf("no bearer token embedded in %s", assetURL)
	}

	return m[1], nil
}

// findScriptAsset looks for the legacy index bundle in script and preload
// tags first, then falls back to scanning the raw page. The entry page is
// a single-page app shell, so the reference can sit in either place.
func findScriptAsset(page string) string {
	var path string

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(page)); err == nil {
		doc.Find("script[src], link[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			ref := sel.AttrOr("src", sel.AttrOr("href", ""))
			if m := scriptAssetRe.FindStringSubmatch(ref); m != nil {
				path = m[1]
				return false
			}
			return true
		})
	}

	if path == "" {
		if m := scriptAssetRe.FindStringSubmatch(page); m != nil {
			path = m[1]
		}
	}

	return path
}

func resolveAsset(entryURL, assetPath string) (string, error) {
	base, err := url.Parse(entryURL)
	if err != nil {
		return "", err
	}

	ref, err := url.Parse(assetPath)
	if err != nil {
		return "", err
	}

	return base.ResolveReference(ref).String(), nil
}

func fetch(client *http.Client, target string) (string, error) {
	resp, err := client.Get(target)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: status %d", target, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
