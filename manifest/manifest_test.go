package manifest

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseAttributeList(t *testing.T) {
	Convey("ParseAttributeList", t, func() {
		Convey("Splits pairs and strips quotes", func() {
			attrs := ParseAttributeList(`TYPE=AUDIO,GROUP-ID="aud",NAME="English"`)
			So(attrs["TYPE"], ShouldEqual, "AUDIO")
			So(attrs["GROUP-ID"], ShouldEqual, "aud")
			So(attrs["NAME"], ShouldEqual, "English")
		})

		Convey("Commas inside quoted values are not protected", func() {
			// Known limitation: the quoted comma splits the value.
			attrs := ParseAttributeList(`A="x,y",B=z`)
			So(attrs["A"], ShouldEqual, "x")
			So(attrs["B"], ShouldEqual, "z")
		})

		Convey("Tokens without an equals sign map to an empty value", func() {
			attrs := ParseAttributeList("FLAG")
			So(attrs["FLAG"], ShouldEqual, "")
		})
	})
}

func TestParseCodecs(t *testing.T) {
	Convey("ParseCodecs", t, func() {
		Convey("Audio-only codec string", func() {
			info := ParseCodecs("mp4a.40.2")
			So(info.ACodec, ShouldEqual, "mp4a.40.2")
			So(info.VCodec, ShouldEqual, "none")
		})

		Convey("Muxed codec string", func() {
			info := ParseCodecs("avc1.64001f,mp4a.40.2")
			So(info.VCodec, ShouldEqual, "avc1.64001f")
			So(info.ACodec, ShouldEqual, "mp4a.40.2")
		})

		Convey("Dolby Vision implies the DV dynamic range", func() {
			info := ParseCodecs("dvh1.05.06,ec-3")
			So(info.VCodec, ShouldEqual, "dvh1.05.06")
			So(info.DynamicRange, ShouldEqual, "DV")
			So(info.ACodec, ShouldEqual, "ec-3")
		})

		Convey("The lossless identifier is not recognized here", func() {
			info := ParseCodecs("alac")
			So(info.ACodec, ShouldEqual, "")
			So(info.VCodec, ShouldEqual, "")
		})
	})
}

func TestParseRenditions(t *testing.T) {
	Convey("ParseRenditions", t, func() {
		Convey("Lossless Atmos variant", func() {
			doc := "#EXTM3U\n" +
				`#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="aud",CHANNELS="16/JOC"` + "\n" +
				`#EXT-X-STREAM-INF:AUDIO="aud",CODECS="alac",BANDWIDTH=1000000` + "\n" +
				"stream/variant.m3u8\n"

			renditions := ParseRenditions(doc, "https://example.com/master.m3u8")
			So(renditions, ShouldHaveLength, 1)

			r := renditions[0]
			So(r.ACodec, ShouldEqual, "alac")
			So(r.VCodec, ShouldEqual, "none")
			So(r.AudioChannels.MustGet(), ShouldEqual, 6)
			So(r.FormatNote, ShouldEqual, "Dolby Atmos")
			So(r.ABR.MustGet(), ShouldEqual, 1000.0)
			So(r.TBR.MustGet(), ShouldEqual, 1000.0)
			So(r.URL, ShouldEqual, "https://example.com/stream/variant.m3u8")
			So(r.HasDRM, ShouldBeTrue)
			So(r.Ext, ShouldEqual, "m4a")
		})

		Convey("Stream attributes win over group attributes", func() {
			doc := `#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="aud",LANGUAGE="en",CHANNELS="2"` + "\n" +
				`#EXT-X-STREAM-INF:AUDIO="aud",CODECS="mp4a.40.2",AVERAGE-BANDWIDTH=256000,BANDWIDTH=300000,LANGUAGE="ja"` + "\n" +
				"https://cdn.example.com/a.m3u8\n"

			renditions := ParseRenditions(doc, "https://example.com/master.m3u8")
			So(renditions, ShouldHaveLength, 1)

			r := renditions[0]
			So(r.Language, ShouldEqual, "ja")
			So(r.AudioChannels.MustGet(), ShouldEqual, 2)
			So(r.ABR.MustGet(), ShouldEqual, 256.0)
			So(r.URL, ShouldEqual, "https://cdn.example.com/a.m3u8")
		})

		Convey("Bit depth becomes the format note unless a layout overrides it", func() {
			doc := `#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID="hires",BIT-DEPTH=24,SAMPLE-RATE=192000` + "\n" +
				`#EXT-X-STREAM-INF:AUDIO="hires",CODECS="alac",BANDWIDTH=9000000` + "\n" +
				"hires.m3u8\n"

			renditions := ParseRenditions(doc, "https://example.com/master.m3u8")
			So(renditions, ShouldHaveLength, 1)
			So(renditions[0].FormatNote, ShouldEqual, "24-bit")
			So(renditions[0].ASR.MustGet(), ShouldEqual, 192000)
		})

		Convey("A document without variant streams yields no renditions and no error", func() {
			So(ParseRenditions("#EXTM3U\n#EXT-X-VERSION:7\n", "https://example.com/m.m3u8"), ShouldBeEmpty)
		})
	})
}

func TestParseSessionData(t *testing.T) {
	Convey("ParseSessionData", t, func() {
		doc := `#EXT-X-SESSION-DATA:DATA-ID="com.apple.hls.title",VALUE="Some Show"` + "\n" +
			`#EXT-X-SESSION-DATA:DATA-ID="com.apple.hls.episode-title",VALUE="Pilot"` + "\n"

		metadata := ParseSessionData(doc)
		So(metadata["com.apple.hls.title"], ShouldEqual, "Some Show")
		So(metadata["com.apple.hls.episode-title"], ShouldEqual, "Pilot")
	})
}
