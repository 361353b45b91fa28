package site

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"git.home.luguber.info/inful/reverie/internal/config"
	"git.home.luguber.info/inful/reverie/internal/feed"
	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
	"git.home.luguber.info/inful/reverie/internal/i18n"
	"git.home.luguber.info/inful/reverie/internal/theme"
)

func (b *Builder) writeTheme(_ context.Context, st *state) error {
	return st.writeFile("theme.css", []byte(theme.Stylesheet(st.site.ThemeDefinition())))
}

// Translations is the localized string table for the active language.
type Translations struct {
	Language string            `json:"language"`
	Strings  map[string]string `json:"strings"`
}

func (b *Builder) writeTranslations(_ context.Context, st *state) error {
	if err := i18n.Validate(); err != nil {
		return err
	}
	table, err := i18n.Table(st.site.Language())
	if err != nil {
		return err
	}
	return st.writeJSON("i18n.json", Translations{Language: st.site.Language().String(), Strings: table})
}

// SiteData exposes the resolved site settings to the page layer.
type SiteData struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Author         string            `json:"author"`
	URL            string            `json:"url"`
	Language       string            `json:"language"`
	Theme          string            `json:"theme"`
	Social         map[string]string `json:"social"`
	Navigation     []config.NavItem  `json:"navigation"`
	ShowRSSLink    bool              `json:"showRssLink"`
	FeedURL        string            `json:"feedUrl"`
	DefaultOGImage string            `json:"defaultOgImage"`
}

func (b *Builder) writeSiteData(_ context.Context, st *state) error {
	nav, err := st.site.Navigation()
	if err != nil {
		return err
	}
	return st.writeJSON("site.json", SiteData{
		Title:          st.site.Title(),
		Description:    st.site.Description(),
		Author:         st.site.Author(),
		URL:            st.site.URL(),
		Language:       st.site.Language().String(),
		Theme:          st.site.Theme(),
		Social:         st.site.SocialLinks(),
		Navigation:     nav,
		ShowRSSLink:    st.site.ShowRSSLink(),
		FeedURL:        st.site.FullURL(b.cfg.Feed.Path),
		DefaultOGImage: st.site.DefaultOGImage(),
	})
}

func (b *Builder) writeFeed(_ context.Context, st *state) error {
	ch := feed.NewChannel(st.site, b.cfg.Feed, feed.WithClock(b.clock))
	var buf bytes.Buffer
	if err := feed.Render(&buf, ch, feed.Build(st.records, st.site.Author())); err != nil {
		return err
	}
	return st.writeFile(b.cfg.Feed.Path, buf.Bytes())
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (b *Builder) writeSitemap(_ context.Context, st *state) error {
	urls := []sitemapURL{
		{Loc: st.site.FullURL("/")},
		{Loc: st.site.FullURL("/blog/")},
		{Loc: st.site.FullURL("/about/")},
	}
	for _, r := range st.published {
		last := r.PublishDate
		if r.UpdatedDate != nil {
			last = *r.UpdatedDate
		}
		urls = append(urls, sitemapURL{
			Loc:     st.site.FullURL(r.Permalink()),
			LastMod: st.formatter.ISO(last),
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemapURLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9", URLs: urls}); err != nil {
		return foundationerrors.BuildError("encode sitemap").WithCause(err).Build()
	}
	fmt.Fprintln(&buf)
	return st.writeFile("sitemap.xml", buf.Bytes())
}
