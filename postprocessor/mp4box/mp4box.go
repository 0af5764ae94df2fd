// Package mp4box drives the external MP4Box muxer: it remuxes a
// downloaded fragmented mp4 into a progressive one and embeds the
// catalog metadata as iTunes-style tags.
package mp4box

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cadence-dl/cadence/key"
	"github.com/cadence-dl/cadence/log"
	"github.com/cadence-dl/cadence/media"
	"github.com/spf13/viper"
)

// Options configures a muxer run.
type Options struct {
	// Path to the MP4Box executable.
	Path string

	EmbedMetadata  bool
	EmbedThumbnail bool

	// ThumbnailPath is the downloaded cover art to embed, when present
	// on disk and EmbedThumbnail is set.
	ThumbnailPath string
}

// FromConfig builds Options from the application configuration.
func FromConfig() Options {
	return Options{
		Path:           viper.GetString(key.MP4BoxPath),
		EmbedMetadata:  viper.GetBool(key.MP4BoxEmbedMetadata),
		EmbedThumbnail: viper.GetBool(key.MP4BoxEmbedThumbnail),
	}
}

// Run remuxes the file in place. MP4Box replaces its input by default, so
// there is no output path. A non-zero exit is fatal and carries the
// muxer's own diagnostics.
func (o Options) Run(item *media.Item, path string) error {
	args := o.Args(item, path)

	log.Debugf("mp4box command line: %s %s", o.Path, strings.Join(args, " "))

	cmd := exec.Command(o.Path, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if out := strings.TrimSpace(stdout.String()); out != "" {
		log.Debug(out)
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			// mp4box writes its progress and errors to stderr
			return fmt.Errorf("mp4box exited with code %d: %s",
				exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("mp4box: %w", err)
	}

	return nil
}

// Args builds the muxer's argument list for a file.
// Brand reference: https://cconcolato.github.io/mp4ra/filetype.html
func (o Options) Args(item *media.Item, path string) []string {
	args := []string{"-brand"}
	if strings.EqualFold(filepath.Ext(path), ".m4a") {
		// the version must ride in the same argument
		args = append(args, "M4A :0")
	} else {
		args = append(args, "mp42")
	}

	for _, brand := range []string{"mp42", "isom"} {
		args = append(args, "-ab", brand)
	}
	if hasEAC3(item) {
		args = append(args, "-ab", "dby1")
	}

	// brands left over from the fragmented download confuse strict players
	for _, brand := range []string{"hlsf", "ccea", "cmfc", "iso5"} {
		args = append(args, "-rb", brand)
	}

	if item.Language != "" {
		args = append(args, "-lang", item.Language)
	}

	if tags := o.Tags(item); tags != "" {
		args = append(args, "-itags", tags)
	}

	return append(args, path)
}

func hasEAC3(item *media.Item) bool {
	for _, r := range item.Renditions {
		if r.ACodec == "ec-3" || r.ACodec == "eac3" {
			return true
		}
	}
	return false
}

// Tags assembles the -itags value. The tag grammar joins key=value pairs
// with colons and has no escape mechanism, so null characters are
// stripped outright; stray colons inside values are usually inferred
// correctly by the muxer as part of the previous tag.
// Tag reference: https://exiftool.org/TagNames/QuickTime.html
func (o Options) Tags(item *media.Item) string {
	if !o.EmbedMetadata && !o.EmbedThumbnail {
		return ""
	}

	if !o.EmbedMetadata {
		if o.EmbedThumbnail && o.ThumbnailPath != "" {
			return "cover=" + o.ThumbnailPath
		}
		return ""
	}

	type tag struct {
		key   string
		value string
	}
	var tags []tag

	add := func(key, value string) {
		if value != "" {
			tags = append(tags, tag{key, value})
		}
	}

	artist := ""
	if len(item.Artists) > 0 {
		artist = item.Artists[0]
	}

	add("name", item.Title)
	add("album", item.Album)
	add("artist", artist)
	if len(item.AlbumArtists) > 0 {
		add("album_artist", item.AlbumArtists[0])
	}
	add("writer", item.Composer)
	if disc, ok := item.DiscNumber.Get(); ok {
		add("disk", fmt.Sprint(disc))
	}
	add("performer", artist)
	if len(item.Genres) > 0 {
		add("genre", item.Genres[0])
	}
	if item.AlbumType != "" {
		if strings.EqualFold(item.AlbumType, "compilation") {
			add("compilation", "yes")
		} else {
			add("compilation", "no")
		}
	}
	if item.ReleaseDate != "" {
		add("created", media.HyphenateDate(item.ReleaseDate))
	}
	if age, ok := item.AgeLimit.Get(); ok {
		if age > 17 {
			add("rating", "1") // explicit
		} else {
			add("rating", "2") // clean
		}
	}
	add("copyright", item.Copyright)

	if number, ok := item.TrackNumber.Get(); ok {
		if count, hasCount := item.TrackCount.Get(); hasCount {
			add("tracknum", fmt.Sprintf("%d/%d", number, count))
		} else {
			add("tracknum", fmt.Sprint(number))
		}
	}

	if o.EmbedThumbnail && o.ThumbnailPath != "" {
		add("cover", o.ThumbnailPath)
	}

	pairs := make([]string, 0, len(tags))
	for _, t := range tags {
		// null characters cannot be passed on a command line
		pairs = append(pairs, strings.ReplaceAll(t.key+"="+t.value, "\x00", ""))
	}

	return strings.Join(pairs, ":")
}
