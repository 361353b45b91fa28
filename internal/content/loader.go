package content

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"

	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
	"git.home.luguber.info/inful/reverie/internal/logfields"
)

// Extensions lists the file types treated as posts.
var Extensions = []string{".md", ".mdx"}

type frontMatter struct {
	Title       string   `yaml:"title" toml:"title" json:"title"`
	Description string   `yaml:"description" toml:"description" json:"description"`
	PublishDate string   `yaml:"publishDate" toml:"publishDate" json:"publishDate"`
	Date        string   `yaml:"date" toml:"date" json:"date"`
	UpdatedDate string   `yaml:"updatedDate" toml:"updatedDate" json:"updatedDate"`
	Updated     string   `yaml:"updated" toml:"updated" json:"updated"`
	Tags        []string `yaml:"tags" toml:"tags" json:"tags"`
	Draft       bool     `yaml:"draft" toml:"draft" json:"draft"`
	HeroImage   string   `yaml:"heroImage" toml:"heroImage" json:"heroImage"`
	Slug        string   `yaml:"slug" toml:"slug" json:"slug"`
}

// Loader reads posts from a content directory.
type Loader struct {
	// Location is used for dates without an explicit offset. Default UTC.
	Location *time.Location
}

// Load walks dir and parses every post. Records are returned in path order.
// A post that cannot be parsed, or two posts sharing a slug, fail the load.
func (l Loader) Load(dir string) ([]Record, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, foundationerrors.ContentError("content directory not found").
			WithContext("path", dir).
			WithCause(err).
			Build()
	}

	var paths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(Extensions, strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "walk content directory").
			Fatal().
			WithContext("path", dir).
			Build()
	}
	slices.Sort(paths)

	records := make([]Record, 0, len(paths))
	bySlug := make(map[string]string, len(paths))
	for _, path := range paths {
		rec, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := bySlug[rec.Slug]; dup {
			return nil, foundationerrors.ContentError("duplicate slug").
				WithContext("slug", rec.Slug).
				WithContext("path", path).
				WithContext("first", prev).
				Build()
		}
		bySlug[rec.Slug] = path
		records = append(records, rec)
		slog.Debug("Loaded post", logfields.Slug(rec.Slug), logfields.Path(path))
	}
	return records, nil
}

// LoadFile parses a single post file.
func (l Loader) LoadFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "read post").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return l.Parse(path, bytes.NewReader(data))
}

// Parse reads a post from r. path is used for the default slug and in errors.
func (l Loader) Parse(path string, r io.Reader) (Record, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(r, &fm)
	if err != nil {
		return Record{}, foundationerrors.WrapError(err, foundationerrors.CategoryContent, "invalid front matter").
			Fatal().
			WithContext("path", path).
			Build()
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		return Record{}, foundationerrors.ContentError("post has no title").WithContext("path", path).Build()
	}

	published, err := l.parseDate(firstNonEmpty(fm.PublishDate, fm.Date))
	if err != nil {
		return Record{}, foundationerrors.WrapError(err, foundationerrors.CategoryContent, "post has no valid publish date").
			Fatal().
			WithContext("path", path).
			Build()
	}

	rec := Record{
		Slug:        firstNonEmpty(strings.TrimSpace(fm.Slug), slugFromPath(path)),
		Title:       title,
		Description: strings.TrimSpace(fm.Description),
		PublishDate: published,
		Tags:        cleanTags(fm.Tags),
		Draft:       fm.Draft,
		HeroImage:   fm.HeroImage,
		Body:        string(body),
		SourcePath:  path,
	}

	if raw := firstNonEmpty(fm.UpdatedDate, fm.Updated); raw != "" {
		updated, err := l.parseDate(raw)
		if err != nil {
			return Record{}, foundationerrors.WrapError(err, foundationerrors.CategoryContent, "invalid updated date").
				Fatal().
				WithContext("path", path).
				Build()
		}
		rec.UpdatedDate = &updated
	}
	return rec, nil
}

func (l Loader) parseDate(raw string) (time.Time, error) {
	loc := l.Location
	if loc == nil {
		loc = time.UTC
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, foundationerrors.ContentError("date is empty").Build()
	}
	return dateparse.ParseIn(raw, loc)
}

// slugFromPath uses the file name, or the directory name for index files.
func slugFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "index" {
		return filepath.Base(filepath.Dir(path))
	}
	return name
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
