package feed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/reverie/internal/config"
	"git.home.luguber.info/inful/reverie/internal/content"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC)
}

func testSite(t *testing.T, lang string) config.Site {
	t.Helper()
	site, err := config.NewSite(config.SiteSettings{
		Title:       "Reverie",
		Description: "Notes",
		Author:      "Ada",
		URL:         "https://blog.example.com",
		Language:    lang,
		Theme:       "sageGreen",
		Email:       "ada@example.com",
	}, nil)
	require.NoError(t, err)
	return site
}

func TestBuild_DropsDraftsNewestFirst(t *testing.T) {
	records := []content.Record{
		{Slug: "d1", Title: "D1", PublishDate: day(1), Draft: true},
		{Slug: "d2", Title: "D2", PublishDate: day(2)},
		{Slug: "d3", Title: "D3", PublishDate: day(3)},
	}

	items := Build(records, "Ada")
	require.Len(t, items, 2)
	assert.Equal(t, "D3", items[0].Title)
	assert.Equal(t, "D2", items[1].Title)
	assert.Equal(t, "/blog/d3/", items[0].Link)
	assert.Equal(t, "Ada", items[0].Author)
	assert.Equal(t, "d1", records[0].Slug, "input is not reordered")
}

func TestBuild_TiesKeepInputOrder(t *testing.T) {
	records := []content.Record{
		{Slug: "a", PublishDate: day(5)},
		{Slug: "b", PublishDate: day(5)},
		{Slug: "c", PublishDate: day(6)},
		{Slug: "d", PublishDate: day(5)},
	}
	items := Build(records, "")
	links := make([]string, 0, len(items))
	for _, it := range items {
		links = append(links, it.Link)
	}
	assert.Equal(t, []string{"/blog/c/", "/blog/a/", "/blog/b/", "/blog/d/"}, links)
}

func TestBuild_CategoriesAndLastModified(t *testing.T) {
	updated := day(10)
	records := []content.Record{
		{Slug: "x", PublishDate: day(1), Tags: []string{"go", "rss"}, UpdatedDate: &updated},
		{Slug: "y", PublishDate: day(2)},
	}
	items := Build(records, "")
	require.Len(t, items, 2)
	assert.Nil(t, items[0].LastModified)
	assert.Empty(t, items[0].Categories)
	require.NotNil(t, items[1].LastModified)
	assert.Equal(t, updated, *items[1].LastModified)
	assert.Equal(t, []string{"go", "rss"}, items[1].Categories)

	items[1].Categories[0] = "changed"
	assert.Equal(t, "go", records[0].Tags[0])
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(nil, "x"))
	assert.Empty(t, Build([]content.Record{{Draft: true}}, "x"))
}

func TestNewChannel(t *testing.T) {
	clock := clockwork.NewFakeClockAt(day(20))
	ch := NewChannel(testSite(t, "zh"), config.FeedConfig{Stylesheet: "/rss/pretty-feed-v3.xsl"}, WithClock(clock))

	assert.Equal(t, "zh-cn", ch.Language)
	assert.Equal(t, "https://blog.example.com/", ch.Link)
	assert.Equal(t, DefaultTTL, ch.TTL)
	assert.Equal(t, "ada@example.com", ch.ManagingEditor)
	assert.Equal(t, "ada@example.com", ch.WebMaster)
	assert.Equal(t, DocsURL, ch.Docs)
	assert.Equal(t, day(20), ch.LastBuildDate)
	assert.True(t, strings.HasPrefix(ch.Generator, "reverie "))
}

func TestRender_ParsesBack(t *testing.T) {
	updated := day(4)
	records := []content.Record{
		{Slug: "first", Title: "First & foremost", Description: "One", PublishDate: day(1), Tags: []string{"go", "web"}},
		{Slug: "second", Title: "Second", Description: "Two", PublishDate: day(2), UpdatedDate: &updated},
		{Slug: "hidden", Title: "Hidden", PublishDate: day(3), Draft: true},
	}
	site := testSite(t, "en")
	ch := NewChannel(site, config.FeedConfig{TTL: 30, Stylesheet: "/rss/pretty-feed-v3.xsl"}, WithClock(clockwork.NewFakeClockAt(day(5))))

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ch, Build(records, site.Author())))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<?xml-stylesheet href="/rss/pretty-feed-v3.xsl" type="text/xsl"?>`)
	assert.Contains(t, out, "<lastBuildDate>Mon, 04 Mar 2024 09:00:00 +0000</lastBuildDate>")

	parsed, err := gofeed.NewParser().ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, "Reverie", parsed.Title)
	assert.Equal(t, "en-us", parsed.Language)
	require.Len(t, parsed.Items, 2)
	assert.Equal(t, "Second", parsed.Items[0].Title)
	assert.Equal(t, "https://blog.example.com/blog/second/", parsed.Items[0].Link)
	assert.Equal(t, "https://blog.example.com/blog/second/", parsed.Items[0].GUID)
	assert.Equal(t, "First & foremost", parsed.Items[1].Title)
	assert.Equal(t, []string{"go", "web"}, parsed.Items[1].Categories)
	require.NotNil(t, parsed.Items[1].PublishedParsed)
	assert.True(t, day(1).Equal(*parsed.Items[1].PublishedParsed))

	raw, err := (&rss.Parser{}).Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "30", raw.TTL)
	assert.Equal(t, DocsURL, raw.Docs)
	assert.Equal(t, "ada@example.com", raw.ManagingEditor)
	assert.Equal(t, "ada@example.com", raw.WebMaster)
}

func TestRender_RequiresAbsoluteLink(t *testing.T) {
	err := Render(&bytes.Buffer{}, Channel{Link: "/relative"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absolute")
}

func TestRender_NoStylesheetOrEmail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Channel{Title: "T", Link: "https://x.example/"}, nil))
	assert.NotContains(t, buf.String(), "xml-stylesheet")
	assert.NotContains(t, buf.String(), "managingEditor")
}

func TestRender_EscapesStylesheetHref(t *testing.T) {
	var buf bytes.Buffer
	ch := Channel{Title: "T", Link: "https://x.example/", Stylesheet: "/feed.xsl?theme=warm&v=2"}
	require.NoError(t, Render(&buf, ch, nil))
	assert.Contains(t, buf.String(), `<?xml-stylesheet href="/feed.xsl?theme=warm&amp;v=2" type="text/xsl"?>`)
}
