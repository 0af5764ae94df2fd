package applemusic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cadence-dl/cadence/auth"
	"github.com/cadence-dl/cadence/log"
	"github.com/cadence-dl/cadence/media"
	"github.com/cadence-dl/cadence/session"
	"golang.org/x/net/html"
)

var (
	untimedTTMLRe = regexp.MustCompile(`itunes:timing=['"]None`)
	songwriterRe  = regexp.MustCompile(`<songwriter>([^<]+)</songwriter>`)
)

// extractLyrics fetches the lyrics endpoints. They require the
// account-bound media-user token and answer 404 when the token is missing
// or invalid, when the song has no lyrics, or when the storefront and the
// account region mismatch. All of those degrade to "no lyrics".
func (e *Song) extractLyrics(region, songID string) map[string][]media.Subtitle {
	token, err := auth.MediaUserToken(vendor)
	if err != nil || token == "" {
		log.Info("no media-user token provided, skipping lyrics extraction")
		return nil
	}

	subtitles := make(map[string][]media.Subtitle)

	for _, endpoint := range []string{"lyrics", "syllable-lyrics"} {
		var envelope apiEnvelope
		err := e.session.JSON(session.Params{
			URL:            e.apiRoot + fmt.Sprintf("/v1/catalog/%s/songs/%s/%s", region, songID, endpoint),
			Headers:        map[string]string{"Media-User-Token": token},
			AcceptStatuses: []int{404},
		}, &envelope)
		if err != nil {
			log.Error(err)
			continue
		}

		if len(envelope.Data) == 0 {
			continue
		}

		ttml := envelope.Data[0].Attributes.TTML
		if ttml == "" {
			continue
		}

		if untimedTTMLRe.MatchString(ttml) {
			// without timing info the TTML is only useful as plain text
			subtitles[endpoint] = []media.Subtitle{{Data: TTMLToText(ttml), Ext: "txt"}}
		} else {
			subtitles[endpoint] = []media.Subtitle{{Data: ttml, Ext: "ttml"}}
		}
	}

	if len(subtitles) == 0 {
		return nil
	}

	return subtitles
}

// TTMLToText converts untimed TTML lyrics to plain text: songwriter tags
// become a "Written By:" line, verse divisions become blank lines, and
// the remaining markup is stripped.
func TTMLToText(ttml string) string {
	prepared := songwriterRe.ReplaceAllString(ttml, "Written By: $1<br/>")
	prepared = strings.ReplaceAll(prepared, "<div", "<br/><br/><div")
	return cleanHTML(prepared)
}

// cleanHTML strips markup, turning <br> into line breaks.
func cleanHTML(s string) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(tokenizer.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}
