package disneyplus

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/cadence-dl/cadence/key"
	"github.com/cadence-dl/cadence/log"
	"github.com/cadence-dl/cadence/manifest"
	"github.com/cadence-dl/cadence/media"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

var videoURLRe = regexp.MustCompile(
	`^https?://(?:www\.)?disneyplus\.com/play/(?P<id>[0-9a-f]{8}\b(?:-[0-9a-f]{4}\b){3}-[0-9a-f]{12})`)

// Video extracts a playable title from its watch URL.
type Video struct {
	base
}

func NewVideo() *Video {
	return &Video{base: newBase()}
}

func (*Video) Name() string {
	return "disneyplus"
}

func (*Video) Match(rawURL string) bool {
	return videoURLRe.MatchString(rawURL)
}

func (e *Video) Extract(rawURL string) (*media.Item, error) {
	videoID := videoURLRe.FindStringSubmatch(rawURL)[1]

	resourceID, contentID, err := e.deeplink(videoID)
	if err != nil {
		return nil, err
	}
	if resourceID == "" {
		return nil, media.NotFoundError("video")
	}

	playback, err := e.playback(resourceID)
	if err != nil {
		return nil, err
	}

	var renditions []*manifest.Rendition
	for _, source := range playback.Stream.Sources {
		sourceURL := source.Complete.URL
		if sourceURL == "" {
			continue
		}

		doc, err := e.fetchManifest(sourceURL)
		if err != nil {
			log.Error(err)
			continue
		}

		var priority int
		if source.Priority != nil {
			priority = *source.Priority
		}

		cdn := source.Complete.Tracking.Telemetry.CDN
		for _, r := range manifest.ParseRenditions(doc, sourceURL) {
			if r.FormatID == "" {
				r.FormatID = cdn
			} else if cdn != "" {
				r.FormatID = cdn + "-" + r.FormatID
			}
			r.Ext = "mp4"
			r.Preference = -priority
			renditions = append(renditions, r)
		}
	}

	enrichRenditions(renditions)
	renditions = dedupeRenditions(renditions)

	item := &media.Item{
		ID:         videoID,
		Kind:       media.KindVideo,
		Renditions: renditions,
		Chapters:   chaptersFromMilestones(playback.Stream.Editorial),
		Headers:    map[string]string{"Authorization": ""},
	}

	if contentID != "" {
		e.applyContentMetadata(contentID, item)
	}

	return item, nil
}

func (e *Video) deeplink(videoID string) (resourceID, contentID string, err error) {
	var envelope deeplinkEnvelope
	err = e.bamgridJSON(http.MethodGet,
		fmt.Sprintf("%s/explore/v1.4/deeplink?action=playback&refId=%s&refIdType=deeplinkId", e.apiRoot, videoID),
		map[string]string{
			"Accept":  "application/json",
			"Referer": "https://www.disneyplus.com/",
		}, nil, &envelope)
	if err != nil {
		return "", "", err
	}

	for _, action := range envelope.Data.Deeplink.Actions {
		if resourceID == "" {
			resourceID = action.ResourceID
		}
		if contentID == "" {
			contentID = action.PartnerFeed.DmcContentID
		}
	}

	return resourceID, contentID, nil
}

func (e *Video) playback(resourceID string) (*playbackEnvelope, error) {
	body, err := json.Marshal(map[string]any{
		"playback": map[string]any{
			"attributes": map[string]any{
				"codecs": map[string]any{
					"video":                    []string{"h.264", "h.265"},
					"supportsMultiCodecMaster": true,
				},
				"protocol":                  "HTTPS",
				"videoRanges":               []string{"DOLBY_VISION"},
				"assetInsertionStrategy":    "SGAI",
				"playbackInitiationContext": "ONLINE",
				"frameRates":                []int{60},
				"slugDuration":              "SLUG_500_MS",
			},
			"adTracking": map[string]any{
				"limitAdTrackingEnabled": "YES",
				"deviceAdId":             "00000000-0000-0000-0000-000000000000",
			},
			"tracking": map[string]any{
				"playbackSessionId": playbackSessionID(),
			},
		},
		"playbackId": resourceID,
	})
	if err != nil {
		return nil, err
	}

	scenario := viper.GetString(key.PlaybackScenario)
	var envelope playbackEnvelope
	err = e.bamgridJSON(http.MethodPost,
		fmt.Sprintf("%s/v7/playback/%s", e.playbackURL, scenario),
		bamsdkHeaders, body, &envelope)
	if err != nil {
		return nil, err
	}

	return &envelope, nil
}

// applyContentMetadata fills editorial metadata from the content service.
// The service answers a null video for a mismatched region; metadata is
// optional enrichment, so that degrades to a bare item rather than a
// failure.
func (e *Video) applyContentMetadata(contentID string, item *media.Item) {
	target := fmt.Sprintf(
		"%s/svc/content/DmcVideo/version/5.1/region/%s/audience/false/maturity/1899/language/%s/contentId/%s",
		e.contentRoot,
		strings.ToUpper(viper.GetString(key.CatalogRegion)),
		viper.GetString(key.CatalogLanguage),
		contentID)

	var envelope dmcEnvelope
	if err := e.bamgridJSON(http.MethodGet, target, nil, nil, &envelope); err != nil {
		log.Error(err)
		return
	}

	video := envelope.Data.DmcVideo.Video
	if video == nil {
		log.Warn("no editorial metadata for the configured region")
		return
	}

	item.Title = video.Text.Title.Full["program"].Default.Content
	item.Series = video.Text.Title.Full["series"].Default.Content
	item.SeriesID = video.SeriesID
	item.Season = video.Text.Title.Full["season"].Default.Content
	item.SeasonID = video.SeasonID

	if video.SeasonSequenceNumber != nil {
		item.SeasonNumber = mo.Some(*video.SeasonSequenceNumber)
	}
	if video.EpisodeNumber != nil {
		item.EpisodeNumber = mo.Some(*video.EpisodeNumber)
	} else if video.EpisodeSequenceNumber != nil {
		item.EpisodeNumber = mo.Some(*video.EpisodeSequenceNumber)
	}

	item.Description = media.FirstTitle(
		video.Text.Description.Full["program"].Default.Content,
		video.Text.Description.Medium["program"].Default.Content,
		video.Text.Description.Brief["program"].Default.Content)

	for _, p := range video.Participant["Creator"] {
		if p.DisplayName != "" {
			item.Creators = append(item.Creators, p.DisplayName)
		}
	}
	for _, p := range video.Participant["Actor"] {
		if p.DisplayName != "" {
			item.Cast = append(item.Cast, p.DisplayName)
		}
	}

	for _, g := range video.TypedGenres {
		if g.Name != "" {
			item.Genres = append(item.Genres, g.Name)
		}
	}

	for _, rating := range video.Ratings {
		if age := media.ParseAgeLimit(rating.Value); age.IsPresent() {
			item.AgeLimit = age
			break
		}
	}

	for _, release := range video.Releases {
		if date := media.UnifiedDate(release.ReleaseDate); date != "" {
			item.ReleaseDate = date
			break
		}
	}

	var thumbnails []media.Thumbnail
	for _, aspect := range video.Image.Thumbnail {
		def := aspect.Program.Default
		if def.URL == "" {
			continue
		}
		t := media.Thumbnail{URL: def.URL}
		if def.MasterWidth > 0 {
			t.Width = mo.Some(def.MasterWidth)
		}
		if def.MasterHeight > 0 {
			t.Height = mo.Some(def.MasterHeight)
		}
		thumbnails = append(thumbnails, t)
	}
	item.Thumbnails = media.DedupeThumbnails(thumbnails)

	if video.ProgramType == "episode" && item.Title != "" {
		item.Kind = media.KindEpisode
		item.Episode = item.Title
	}
}
