package disneyplus

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cadence-dl/cadence/manifest"
	"github.com/cadence-dl/cadence/media"
	"github.com/samber/mo"
)

var compositeBitrateRe = regexp.MustCompile(`r/composite_(\d+)k`)

// enrichRenditions backfills what the playback manifests leave implicit:
// dynamic range from the composite URL for video tracks, and bitrate,
// codec and DRM status for audio tracks.
func enrichRenditions(renditions []*manifest.Rendition) {
	for _, r := range renditions {
		if r.VCodec != "" && r.VCodec != "none" {
			if strings.Contains(r.URL, "HDR_DOLBY_VISION") {
				r.DynamicRange = "DV"
			} else if strings.Contains(r.URL, "HDR_HDR10") {
				r.DynamicRange = "HDR10"
			}
			continue
		}

		// audio tracks are served in the clear
		r.HasDRM = false

		// audio description tracks should lose to the main track
		if strings.Contains(strings.ToLower(r.FormatNote), "description") {
			r.LanguagePreference = -10
		}

		if r.ABR.IsAbsent() {
			if m := compositeBitrateRe.FindStringSubmatch(r.URL); m != nil {
				if abr, err := strconv.Atoi(m[1]); err == nil {
					r.ABR = mo.Some(float64(abr))
				}
			}
		}

		if r.ACodec != "" && r.ACodec != "none" {
			continue
		}

		switch {
		case strings.Contains(r.FormatID, "eac-3-"):
			r.ACodec = "eac3"
		case strings.Contains(r.FormatID, "aac-"):
			r.ACodec = "aac"
		}
	}
}

// dedupeRenditions drops renditions whose URL was already seen, keeping
// the first occurrence. Sources from different CDNs list the same
// composite streams.
func dedupeRenditions(renditions []*manifest.Rendition) []*manifest.Rendition {
	seen := make(map[string]bool, len(renditions))
	result := renditions[:0]
	for _, r := range renditions {
		if seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		result = append(result, r)
	}
	return result
}

// chaptersFromMilestones converts the editorial markers into chapters.
// The service labels intro boundaries either with readable names or with
// the legacy four-letter codes.
func chaptersFromMilestones(milestones []milestone) []media.Chapter {
	offsets := make(map[string]int, len(milestones))
	for _, m := range milestones {
		if m.OffsetMillis != nil {
			offsets[m.Label] = *m.OffsetMillis
		}
	}

	var chapters []media.Chapter

	end, ok := offsets["intro_end"]
	if !ok {
		end, ok = offsets["LFEI"]
	}
	if ok {
		start, found := offsets["intro_start"]
		if !found {
			start = offsets["FFEI"]
		}
		chapters = append(chapters, media.Chapter{
			Title:     "Intro",
			StartTime: float64(start) / 1000,
			EndTime:   float64(end) / 1000,
		})
	}

	if credits, ok := offsets["FFEC"]; ok {
		chapters = append(chapters, media.Chapter{
			Title:     "Credits",
			StartTime: float64(credits) / 1000,
		})
	}

	return chapters
}

