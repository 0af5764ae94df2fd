package manifest

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/samber/mo"
)

// LosslessCodec is the CODECS value the storefront uses for its lossless
// tier. Generic codec-string parsers do not recognize it, so renditions
// carrying it get their codec info forced rather than parsed.
const LosslessCodec = "alac"

var (
	mediaLineRe   = regexp.MustCompile(`(?m)^#EXT-X-MEDIA:(.+)`)
	streamLineRe  = regexp.MustCompile(`(?m)^#EXT-X-STREAM-INF:([^\r\n]+)\r?\n([^\r\n]+\.m3u8)`)
	sessionDataRe = regexp.MustCompile(`(?m)^#EXT-X-SESSION-DATA:(.+)`)
	absoluteURLRe = regexp.MustCompile(`^https?://`)
)

// Channel layouts observed in live manifests. This is a fixed
// vendor-observed table, not a pattern to extend.
var channelLayouts = map[string]struct {
	count int
	note  string
}{
	"16/JOC":       {6, "Dolby Atmos"},
	"2/-/DOWNMIX":  {2, "Downmix"},
	"2/-/BINAURAL": {2, "Binaural"},
}

// ParseRenditions extracts the variant streams of a manifest document into
// normalized renditions, in manifest appearance order. Every #EXT-X-MEDIA
// group is indexed first, then each #EXT-X-STREAM-INF line is merged with
// its referenced audio group, stream attributes winning on collision.
//
// A document without any variant streams yields an empty slice, not an
// error: "no playable formats" is the caller's condition to report.
func ParseRenditions(doc, manifestURL string) []*Rendition {
	groups := make(map[string]map[string]string)
	for _, m := range mediaLineRe.FindAllStringSubmatch(doc, -1) {
		attrs := ParseAttributeList(m[1])
		id := attrs["GROUP-ID"]
		delete(attrs, "GROUP-ID")
		groups[id] = attrs
	}

	var renditions []*Rendition

	for _, m := range streamLineRe.FindAllStringSubmatch(doc, -1) {
		stream, uri := ParseAttributeList(m[1]), m[2]

		groupID := stream["AUDIO"]
		delete(stream, "AUDIO")

		// Merge into a fresh map so a group shared by several variants
		// never sees another variant's stream attributes.
		attrs := make(map[string]string, len(stream)+len(groups[groupID]))
		for k, v := range groups[groupID] {
			attrs[k] = v
		}
		for k, v := range stream {
			attrs[k] = v
		}

		var info CodecInfo
		if codecs := attrs["CODECS"]; codecs == LosslessCodec {
			info = CodecInfo{ACodec: LosslessCodec, VCodec: "none"}
		} else {
			info = ParseCodecs(codecs)
		}

		r := &Rendition{
			FormatID:     groupID,
			URL:          resolveURI(uri, manifestURL),
			ManifestURL:  manifestURL,
			Ext:          "m4a",
			Protocol:     "m3u8_native",
			ACodec:       info.ACodec,
			VCodec:       info.VCodec,
			DynamicRange: info.DynamicRange,
			Language:     attrs["LANGUAGE"],
			HasDRM:       true,
		}

		if tbr, ok := bitrate(attrs); ok {
			r.TBR = mo.Some(tbr)
			r.ABR = mo.Some(tbr)
		}

		if asr, err := strconv.Atoi(attrs["SAMPLE-RATE"]); err == nil {
			r.ASR = mo.Some(asr)
		}

		if depth := attrs["BIT-DEPTH"]; depth != "" {
			r.FormatNote = fmt.Sprintf("%s-bit", depth)
		}

		if channels := attrs["CHANNELS"]; channels != "" {
			if layout, ok := channelLayouts[channels]; ok {
				r.AudioChannels = mo.Some(layout.count)
				r.FormatNote = layout.note
			} else if n, err := strconv.Atoi(channels); err == nil {
				r.AudioChannels = mo.Some(n)
			}
		}

		renditions = append(renditions, r)
	}

	return renditions
}

// bitrate picks the variant bitrate in kbps, preferring the averaged
// bandwidth attributes over the peak one.
func bitrate(attrs map[string]string) (float64, bool) {
	for _, key := range []string{"AVERAGE-BANDWIDTH", "_AVG-BANDWIDTH", "BANDWIDTH"} {
		if v, err := strconv.ParseFloat(attrs[key], 64); err == nil {
			return v / 1000, true
		}
	}
	return 0, false
}

func resolveURI(uri, manifestURL string) string {
	if absoluteURLRe.MatchString(uri) {
		return uri
	}

	base, err := url.Parse(manifestURL)
	if err != nil {
		return uri
	}

	ref, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	return base.ResolveReference(ref).String()
}
