package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
)

func writePost(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_FullFrontMatter(t *testing.T) {
	src := `---
title: "Hello, world"
description: First post
publishDate: 2024-01-15
updatedDate: 2024-02-01
tags: [go, " blog ", go]
heroImage: /images/hero.png
---
Body text.
`
	rec, err := Loader{}.Parse("posts/hello-world.mdx", strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "hello-world", rec.Slug)
	assert.Equal(t, "Hello, world", rec.Title)
	assert.Equal(t, "First post", rec.Description)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), rec.PublishDate)
	require.NotNil(t, rec.UpdatedDate)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *rec.UpdatedDate)
	assert.Equal(t, []string{"go", "blog"}, rec.Tags)
	assert.False(t, rec.Draft)
	assert.Equal(t, "/images/hero.png", rec.HeroImage)
	assert.Contains(t, rec.Body, "Body text.")
	assert.Equal(t, "/blog/hello-world/", rec.Permalink())
}

func TestParse_DateAliasAndSlugOverride(t *testing.T) {
	src := "---\ntitle: T\ndate: \"March 3, 2023\"\nslug: custom\ndraft: true\n---\n"
	rec, err := Loader{}.Parse("a.md", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "custom", rec.Slug)
	assert.True(t, rec.Draft)
	assert.Equal(t, time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC), rec.PublishDate)
	assert.Nil(t, rec.UpdatedDate)
}

func TestParse_IndexFileUsesDirectoryName(t *testing.T) {
	src := "---\ntitle: T\npublishDate: 2023-01-01\n---\n"
	rec, err := Loader{}.Parse(filepath.Join("blog", "my-post", "index.md"), strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "my-post", rec.Slug)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing title", "---\npublishDate: 2024-01-01\n---\n"},
		{"missing date", "---\ntitle: T\n---\n"},
		{"bad date", "---\ntitle: T\npublishDate: not a date\n---\n"},
		{"bad updated", "---\ntitle: T\npublishDate: 2024-01-01\nupdatedDate: nope\n---\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Loader{}.Parse("x.md", strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryContent))
		})
	}
}

func TestLoad_WalksDirectory(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "b.md", "---\ntitle: B\npublishDate: 2024-01-02\n---\nb")
	writePost(t, dir, "a.mdx", "---\ntitle: A\npublishDate: 2024-01-01\n---\na")
	writePost(t, dir, "notes.txt", "ignored")
	writePost(t, dir, ".drafts/c.md", "---\ntitle: C\npublishDate: 2024-01-03\n---\nc")

	records, err := Loader{}.Load(dir)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Slug)
	assert.Equal(t, "b", records[1].Slug)
}

func TestLoad_DuplicateSlug(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a.md", "---\ntitle: A\npublishDate: 2024-01-01\n---\n")
	writePost(t, dir, "other.md", "---\ntitle: B\nslug: a\npublishDate: 2024-01-01\n---\n")

	_, err := Loader{}.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate slug")
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Loader{}.Load(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryContent))
}

func TestSortAndFilter(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC) }
	records := []Record{
		{Slug: "one", PublishDate: d(1), Tags: []string{"go"}},
		{Slug: "two", PublishDate: d(2), Draft: true},
		{Slug: "three", PublishDate: d(3), Tags: []string{"astro", "go"}},
		{Slug: "three-b", PublishDate: d(3)},
	}

	pub := Published(records)
	require.Len(t, pub, 3)

	SortNewestFirst(pub)
	assert.Equal(t, []string{"three", "three-b", "one"}, []string{pub[0].Slug, pub[1].Slug, pub[2].Slug})
	assert.Equal(t, []string{"astro", "go"}, Tags(records))
}
