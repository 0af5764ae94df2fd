package abclisten

import (
	"regexp"

	"github.com/cadence-dl/cadence/manifest"
	"github.com/cadence-dl/cadence/media"
	"github.com/samber/mo"
)

var (
	programURLRe = regexp.MustCompile(`^https?://(?:www\.)?abc\.net\.au/listen/audiobooks/(?P<slug>[^/]+)/?$`)
	programIDRe  = regexp.MustCompile(`coremedia://program/(\d+)`)
)

// Program extracts an entire audiobook as a playlist of its episodes.
type Program struct {
	base
	siteRoot string
}

func NewProgram() *Program {
	return &Program{base: newBase(), siteRoot: "https://www.abc.net.au"}
}

func (*Program) Name() string {
	return "abclisten"
}

func (*Program) Match(rawURL string) bool {
	return programURLRe.MatchString(rawURL)
}

func (e *Program) Extract(rawURL string) (*media.Item, error) {
	// The numeric program id only appears inside the webpage, never in
	// the URL.
	page, err := e.fetchPage(rawURL)
	if err != nil {
		return nil, err
	}

	m := programIDRe.FindStringSubmatch(page)
	if m == nil {
		return nil, media.NotFoundError("audiobook")
	}
	programID := m[1]

	var data struct {
		Program *programNode `json:"program"`
	}
	// TODO: page through audiobooks with more than 250 episodes
	if err := e.graphql("GetProgramDetails", map[string]any{
		"id":           programID,
		"episodeLimit": 250,
	}, &data); err != nil {
		return nil, err
	}

	if data.Program == nil {
		return nil, media.NotFoundError("audiobook")
	}
	program := data.Program

	item := &media.Item{
		ID:          programID,
		Kind:        media.KindProgram,
		Title:       media.FirstTitle(program.Title, program.TeaserTitle, program.ShortTeaserTitle, program.SortTitle),
		Description: program.Description.PlainText,
		Thumbnails:  programThumbnails(program),
	}

	for _, doc := range program.ProgramContentCollection.Document {
		for i := range doc.Items {
			node := &doc.Items[i]
			episode := episodeItem(node)
			episode.ReleaseDate = media.UnifiedDate(node.PublicationDate)

			item.Entries = append(item.Entries, media.Entry{
				ID:    node.ID,
				Title: episode.Title,
				Item:  episode,
			})
		}
	}

	return item, nil
}

// episodeItem maps the fields shared by the program listing and the
// standalone episode query.
func episodeItem(node *episodeNode) *media.Item {
	item := &media.Item{
		ID:          node.ID,
		Kind:        media.KindEpisode,
		Title:       media.FirstTitle(node.Title, node.TeaserTitle, node.ShortTeaserTitle, node.SortTitle),
		Description: node.Caption.PlainText,
	}

	if node.Duration != nil && *node.Duration > 0 {
		item.Duration = mo.Some(*node.Duration)
	}

	for _, r := range node.Renditions {
		if r.URL == "" {
			continue
		}
		item.Renditions = append(item.Renditions, &manifest.Rendition{
			URL:      r.URL,
			Ext:      mimetypeExt(r.ContentType),
			Protocol: "http",
			VCodec:   "none",
		})
	}

	return item
}

func programThumbnails(program *programNode) []media.Thumbnail {
	links := make([]*imageLink, 0, 1+len(program.AlternateProgramImage.Document))
	if program.ThumbnailLink != nil {
		links = append(links, program.ThumbnailLink)
	}
	for i := range program.AlternateProgramImage.Document {
		links = append(links, &program.AlternateProgramImage.Document[i])
	}

	var thumbnails []media.Thumbnail
	for _, link := range links {
		thumbnails = append(thumbnails, imageThumbnails(link)...)
	}

	return media.DedupeThumbnails(thumbnails)
}

func imageThumbnails(link *imageLink) []media.Thumbnail {
	if link == nil {
		return nil
	}

	var thumbnails []media.Thumbnail
	for _, crop := range link.CropInfo {
		for _, v := range crop.Value {
			if v.URL != "" {
				thumbnails = append(thumbnails, media.Thumbnail{URL: v.URL})
			}
		}
	}
	return thumbnails
}
