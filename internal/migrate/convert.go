// Package migrate converts posts from other blog engines into MDX posts with
// the front matter layout the content loader expects.
package migrate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	stripmd "github.com/writeas/go-strip-markdown"

	"git.home.luguber.info/inful/reverie/internal/frontmatter"
	"git.home.luguber.info/inful/reverie/internal/markdown"
)

const (
	// DefaultDescription is used when no usable paragraph is found.
	DefaultDescription = "A blog post about technology and development."
	// DefaultImagePrefix is where relative image links are pointed.
	DefaultImagePrefix = "/images/blog/"
	// CalloutImport is prepended when a post uses callouts.
	CalloutImport = "import Callout from '../../components/Callout.astro';"

	maxTags           = 5
	descriptionMinLen = 50
	descriptionMaxLen = 300
	descriptionCutAt  = 160
	ellipsis          = "..."
)

// TechTerms are added as tags when they occur anywhere in a post body.
var TechTerms = []string{
	"javascript", "typescript", "react", "vue", "astro", "css", "html", "nodejs",
	"python", "web development", "frontend", "backend", "design", "ui/ux",
	"performance", "accessibility", "seo",
}

// Post is a converted post ready to be written.
type Post struct {
	Slug        string
	Title       string
	Description string
	PublishDate time.Time
	UpdatedDate *time.Time
	HeroImage   string
	Tags        []string
	Draft       bool
	Imports     []string
	Body        string
	// Images lists the relative image paths that were rewritten.
	Images []string
}

// Converter turns source documents into Posts.
type Converter struct {
	// Now is used when a post has no parseable date.
	Now func() time.Time
	// ImagePrefix replaces DefaultImagePrefix when set.
	ImagePrefix string
}

// Convert parses one source document. path is used for the fallback title.
func (c Converter) Convert(path string, data []byte) (Post, error) {
	doc, err := frontmatter.Parse(data)
	if err != nil {
		return Post{}, fmt.Errorf("parse front matter: %w", err)
	}
	fm := doc.Fields
	body := strings.ReplaceAll(string(doc.Body), "\r\n", "\n")

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	title := firstString(fm, "title")
	if title == "" {
		title = base
	}

	p := Post{
		Title:       title,
		Description: Description(body, fm),
		PublishDate: c.parseDate(firstValue(fm, "date", "publishDate", "created")),
		Tags:        Tags(body, fm),
		Draft:       asBool(fm["draft"]),
		HeroImage:   firstString(fm, "heroImage", "image"),
	}
	if raw := firstValue(fm, "updated", "updatedDate"); raw != nil {
		updated := c.parseDate(raw)
		p.UpdatedDate = &updated
	}

	p.Slug = firstString(fm, "slug")
	if p.Slug == "" {
		p.Slug = Slugify(title)
	}
	if p.Slug == "" {
		p.Slug = Slugify(base)
	}
	if p.Slug == "" {
		return Post{}, fmt.Errorf("cannot derive a slug from title %q or file name %q", title, base)
	}

	prefix := c.ImagePrefix
	if prefix == "" {
		prefix = DefaultImagePrefix
	}
	rewritten, err := markdown.RewriteImages([]byte(body), func(dest string) (string, bool) {
		if !isRelativeImage(dest) {
			return "", false
		}
		p.Images = append(p.Images, dest)
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(dest, "./"), true
	})
	if err != nil {
		return Post{}, fmt.Errorf("rewrite images: %w", err)
	}
	p.Body = string(rewritten)

	if strings.Contains(p.Body, "<Callout") || strings.Contains(p.Body, ":::") {
		p.Imports = append(p.Imports, CalloutImport)
	}
	return p, nil
}

// Render produces the MDX file contents.
func (p Post) Render() ([]byte, error) {
	fields := []frontmatter.Field{
		{Key: "title", Value: p.Title},
		{Key: "description", Value: p.Description},
		{Key: "publishDate", Value: p.PublishDate.UTC().Format(time.DateOnly)},
	}
	if p.UpdatedDate != nil {
		fields = append(fields, frontmatter.Field{Key: "updatedDate", Value: p.UpdatedDate.UTC().Format(time.DateOnly)})
	}
	if p.HeroImage != "" {
		fields = append(fields, frontmatter.Field{Key: "heroImage", Value: p.HeroImage})
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	fields = append(fields,
		frontmatter.Field{Key: "tags", Value: tags},
		frontmatter.Field{Key: "draft", Value: p.Draft},
	)

	fm, err := frontmatter.SerializeOrdered(fields, frontmatter.Options{QuoteStrings: true, FlowSequences: true})
	if err != nil {
		return nil, err
	}

	var body strings.Builder
	for _, imp := range p.Imports {
		body.WriteString(imp)
		body.WriteString("\n")
	}
	if len(p.Imports) > 0 {
		body.WriteString("\n")
	}
	body.WriteString(strings.TrimLeft(p.Body, "\n"))

	return frontmatter.Join(fm, []byte(body.String()), true, frontmatter.Style{Newline: "\n"}), nil
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w\-]+`)
	dashesRe     = regexp.MustCompile(`\-\-+`)
	imageRe      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
)

// Slugify lowercases text, joins words with dashes and drops anything that
// is not an ASCII letter, digit, underscore or dash.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = nonWordRe.ReplaceAllString(s, "")
	s = dashesRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Description picks description or excerpt from the front matter, then the
// first paragraph of suitable length, then DefaultDescription.
func Description(body string, fm map[string]any) string {
	if d := firstString(fm, "description", "excerpt"); d != "" {
		return d
	}
	for _, para := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n\n") {
		cleaned := imageRe.ReplaceAllString(para, "")
		cleaned = strings.TrimSpace(stripmd.Strip(cleaned))
		n := utf8.RuneCountInString(cleaned)
		if n <= descriptionMinLen || n >= descriptionMaxLen {
			continue
		}
		if n > descriptionCutAt {
			return string([]rune(cleaned)[:descriptionCutAt]) + ellipsis
		}
		return cleaned
	}
	return DefaultDescription
}

// Tags merges front matter tags and categories with tech terms found in the
// body, in that order, without duplicates, capped at five.
func Tags(body string, fm map[string]any) []string {
	var out []string
	seen := map[string]struct{}{}
	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	switch v := fm["tags"].(type) {
	case string:
		for _, t := range strings.Split(v, ",") {
			add(t)
		}
	case []any:
		for _, t := range v {
			add(fmt.Sprint(t))
		}
	}
	if cats, ok := fm["categories"].([]any); ok {
		for _, c := range cats {
			add(fmt.Sprint(c))
		}
	}

	lower := strings.ToLower(body)
	for _, term := range TechTerms {
		if strings.Contains(lower, term) {
			add(strings.ReplaceAll(term, "/", "-"))
		}
	}

	if len(out) > maxTags {
		out = out[:maxTags]
	}
	return out
}

func (c Converter) parseDate(v any) time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	switch d := v.(type) {
	case time.Time:
		return d
	case string:
		if t, err := dateparse.ParseIn(strings.TrimSpace(d), time.UTC); err == nil {
			return t
		}
	case int:
		if t, err := dateparse.ParseIn(fmt.Sprint(d), time.UTC); err == nil {
			return t
		}
	}
	return now()
}

func isRelativeImage(dest string) bool {
	lower := strings.ToLower(dest)
	for _, p := range []string{"http://", "https://", "data:", "/", "#"} {
		if strings.HasPrefix(lower, p) {
			return false
		}
	}
	return true
}

func firstValue(fm map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := fm[k]; ok && v != nil && v != "" {
			return v
		}
	}
	return nil
}

func firstString(fm map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := fm[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func asBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
