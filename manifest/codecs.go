package manifest

import "strings"

// CodecInfo is the codec portion of a rendition, split the way the host
// format schema expects: "none" marks a stream that carries no track of
// that kind, an empty string means unknown.
type CodecInfo struct {
	ACodec       string
	VCodec       string
	DynamicRange string
}

var (
	videoCodecs = map[string]string{
		"avc1": "", "avc2": "", "avc3": "", "avc4": "",
		"h264": "", "mp4v": "", "av01": "",
		"hev1": "", "hev2": "", "hvc1": "",
		"vp08": "", "vp09": "", "vp8": "", "vp9": "", "theora": "",
		"dvh1": "DV", "dvhe": "DV",
	}
	audioCodecs = map[string]bool{
		"mp4a": true, "aac": true, "mp3": true, "opus": true,
		"vorbis": true, "flac": true, "dra": true,
		"ac-3": true, "ec-3": true, "eac3": true,
	}
)

// ParseCodecs splits an RFC 6381 CODECS attribute into audio and video
// codec identifiers. It deliberately does not know "alac": callers that
// care about the lossless codec must special-case it before delegating
// here, mirroring how the host framework's own parser behaves.
func ParseCodecs(codecs string) CodecInfo {
	var info CodecInfo
	for _, codec := range strings.Split(codecs, ",") {
		codec = strings.TrimSpace(codec)
		if codec == "" {
			continue
		}

		base, _, _ := strings.Cut(codec, ".")
		base = strings.ToLower(base)

		if dr, ok := videoCodecs[base]; ok {
			if info.VCodec == "" {
				info.VCodec = codec
				info.DynamicRange = dr
			}
			continue
		}

		if audioCodecs[base] && info.ACodec == "" {
			info.ACodec = codec
		}
	}

	if info.ACodec != "" && info.VCodec == "" {
		info.VCodec = "none"
	} else if info.VCodec != "" && info.ACodec == "" {
		info.ACodec = "none"
	}

	return info
}
