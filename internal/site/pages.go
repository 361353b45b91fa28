package site

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/reverie/internal/content"
	"git.home.luguber.info/inful/reverie/internal/dates"
	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
	"git.home.luguber.info/inful/reverie/internal/markdown"
	"git.home.luguber.info/inful/reverie/internal/readingtime"
)

// DateSet is one timestamp in every display form.
type DateSet struct {
	ISO      string `json:"iso"`
	Long     string `json:"long"`
	Medium   string `json:"medium"`
	Compact  string `json:"compact"`
	Relative string `json:"relative"`
}

// PostPage is the data a post page is rendered from.
type PostPage struct {
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Permalink   string             `json:"permalink"`
	URL         string             `json:"url"`
	Published   DateSet            `json:"published"`
	Updated     *DateSet           `json:"updated,omitempty"`
	Tags        []string           `json:"tags"`
	HeroImage   string             `json:"heroImage,omitempty"`
	OGImage     string             `json:"ogImage"`
	ReadingTime readingtime.Stats  `json:"readingTime"`
	Headings    []markdown.Heading `json:"headings"`
	HTML        string             `json:"html"`
}

// IndexEntry is one row of the post listing.
type IndexEntry struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Permalink   string   `json:"permalink"`
	Published   DateSet  `json:"published"`
	Tags        []string `json:"tags"`
	ReadingTime string   `json:"readingTime"`
}

// Index is the post listing, newest first.
type Index struct {
	Language string       `json:"language"`
	Count    int          `json:"count"`
	Tags     []string     `json:"tags"`
	Posts    []IndexEntry `json:"posts"`
}

func dateSet(f *dates.Formatter, t time.Time) DateSet {
	return DateSet{
		ISO:      f.ISO(t),
		Long:     f.Long(t),
		Medium:   f.Medium(t),
		Compact:  f.Compact(t),
		Relative: f.Relative(t),
	}
}

// renderableBody drops the ESM import/export lines MDX posts start with.
func renderableBody(r content.Record) string {
	if !strings.EqualFold(filepath.Ext(r.SourcePath), ".mdx") {
		return r.Body
	}
	lines := strings.SplitAfter(r.Body, "\n")
	i := 0
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed != "" && !strings.HasPrefix(trimmed, "import ") && !strings.HasPrefix(trimmed, "export ") {
			break
		}
	}
	return strings.Join(lines[i:], "")
}

func (b *Builder) buildPage(st *state, r content.Record) (PostPage, error) {
	body := renderableBody(r)
	stats, err := readingtime.Analyze(st.site.Language(), body)
	if err != nil {
		return PostPage{}, err
	}
	html, err := markdown.Render([]byte(body))
	if err != nil {
		return PostPage{}, foundationerrors.BuildError("render post").
			WithCause(err).
			WithContext("slug", r.Slug).
			Build()
	}

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	og := r.HeroImage
	if og == "" {
		og = st.site.DefaultOGImage()
	}

	page := PostPage{
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Permalink:   r.Permalink(),
		URL:         st.site.FullURL(r.Permalink()),
		Published:   dateSet(st.formatter, r.PublishDate),
		Tags:        tags,
		HeroImage:   r.HeroImage,
		OGImage:     og,
		ReadingTime: stats,
		Headings:    markdown.Headings([]byte(body)),
		HTML:        html,
	}
	if r.UpdatedDate != nil {
		updated := dateSet(st.formatter, *r.UpdatedDate)
		page.Updated = &updated
	}
	return page, nil
}

func (b *Builder) writePosts(ctx context.Context, st *state) error {
	st.pages = make([]PostPage, 0, len(st.published))
	for _, r := range st.published {
		if err := ctx.Err(); err != nil {
			return err
		}
		page, err := b.buildPage(st, r)
		if err != nil {
			return err
		}
		if err := st.writeJSON(postsDir+"/"+r.Slug+".json", page); err != nil {
			return err
		}
		st.pages = append(st.pages, page)
	}
	return nil
}

func (b *Builder) writeIndex(_ context.Context, st *state) error {
	idx := Index{
		Language: st.site.Language().String(),
		Count:    len(st.pages),
		Tags:     content.Tags(st.published),
		Posts:    make([]IndexEntry, 0, len(st.pages)),
	}
	for _, p := range st.pages {
		idx.Posts = append(idx.Posts, IndexEntry{
			Slug:        p.Slug,
			Title:       p.Title,
			Description: p.Description,
			Permalink:   p.Permalink,
			Published:   p.Published,
			Tags:        p.Tags,
			ReadingTime: p.ReadingTime.Label,
		})
	}
	return st.writeJSON("posts.json", idx)
}
