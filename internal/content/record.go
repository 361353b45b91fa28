// Package content loads blog posts from Markdown/MDX files with front matter.
package content

import (
	"slices"
	"time"
)

// Record is one post as parsed from its source file.
type Record struct {
	Slug        string
	Title       string
	Description string
	PublishDate time.Time
	UpdatedDate *time.Time
	Tags        []string
	Draft       bool
	HeroImage   string
	Body        string
	SourcePath  string
}

// Permalink is the site-relative URL of the post.
func (r Record) Permalink() string {
	return "/blog/" + r.Slug + "/"
}

// Published returns the non-draft records in input order.
func Published(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !r.Draft {
			out = append(out, r)
		}
	}
	return out
}

// SortNewestFirst sorts records by publish date, newest first.
// Records with equal dates keep their relative order.
func SortNewestFirst(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return b.PublishDate.Compare(a.PublishDate)
	})
}

// Tags returns the distinct tags used by records, sorted.
func Tags(records []Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, t := range r.Tags {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
