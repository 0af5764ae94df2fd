package applemusic

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/cadence-dl/cadence/media"
	"github.com/cadence-dl/cadence/util"
)

var seeAllRe = regexp.MustCompile(
	`^https?://(?:(?:geo|beta)\.)?music\.apple\.com/(?P<region>[a-z]{2})/artist/.+/(?P<artist_id>[0-9]+)/see-all.*` +
		`[?&]section=(?P<section>(?:appears-on|compilation|featured|full|live)-albums|singles)`)

// SeeAll extracts an artist's "see all" section as a flat album listing.
type SeeAll struct {
	base
}

func NewSeeAll() *SeeAll {
	return &SeeAll{base: newBase()}
}

func (*SeeAll) Name() string {
	return "applemusic:seeall"
}

func (*SeeAll) Match(rawURL string) bool {
	return seeAllRe.MatchString(rawURL)
}

func (e *SeeAll) Extract(rawURL string) (*media.Item, error) {
	groups := util.ReGroups(seeAllRe, rawURL)
	region, artistID, section := groups["region"], groups["artist_id"], groups["section"]

	item := &media.Item{
		ID:         artistID,
		Kind:       media.KindPlaylist,
		RegionCode: region,
	}

	// The page size must ride in the query rather than the path: the
	// "next" link carries only the offset.
	query := langQuery(rawURL)
	if query == nil {
		query = url.Values{}
	}
	query.Set("limit", strconv.Itoa(perPageMax))

	path := fmt.Sprintf("/v1/catalog/%s/artists/%s/view/%s", region, artistID, section)
	for {
		var envelope apiEnvelope
		if err := e.apiJSON(path, query, suppressUserAuth, nil, &envelope); err != nil {
			return nil, err
		}

		for i := range envelope.Data {
			album := &envelope.Data[i]

			sub := &media.Item{ID: album.ID}
			applyCommonMetadata(album, sub)
			applyAlbumMetadata(album, sub)

			item.Entries = append(item.Entries, media.Entry{
				ID:    album.ID,
				URL:   album.Attributes.URL,
				Title: sub.Title,
				Item:  sub,
			})
		}

		if envelope.Next == "" {
			return item, nil
		}
		path = envelope.Next
	}
}
