package config

import (
	"maps"
	"strings"

	"git.home.luguber.info/inful/reverie/internal/foundation"
	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
	"git.home.luguber.info/inful/reverie/internal/i18n"
	"git.home.luguber.info/inful/reverie/internal/theme"
)

// DefaultOGImage is the site-relative image used when a page has none.
const DefaultOGImage = "/og-image.png"

// identity holds the per-language defaults for the site's name and byline.
type identity struct {
	title, description, author string
}

var defaultIdentity = map[i18n.Language]identity{
	i18n.English: {"Reverie", "Personal thoughts, stories, and life reflections", "Your Name"},
	i18n.Chinese: {"天空之境", "个人思考、故事与生活感悟", "你的名字"},
}

// Site is the resolved, read-only site configuration. It is created once per
// build and passed to every consumer.
type Site struct {
	title       string
	description string
	author      string
	url         string
	language    i18n.Language
	theme       theme.Theme
	social      map[string]string
	email       string
}

// NavItem is one entry of the main navigation.
type NavItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Href string `json:"href"`
}

var siteValidators = foundation.NewValidatorChain(
	foundation.Field(func(s SiteSettings) string { return s.URL }, foundation.AbsoluteURL("site.url")),
	foundation.Field(func(s SiteSettings) string { return s.Email }, foundation.OptionalEmail("site.email")),
)

// NewSite validates settings and resolves the language and theme.
// Empty title, description and author fall back to language-specific defaults.
func NewSite(settings SiteSettings, social map[string]string) (Site, error) {
	if err := siteValidators.Validate(settings).ToError(); err != nil {
		return Site{}, err
	}

	lang, err := i18n.ParseLanguage(settings.Language)
	if err != nil {
		return Site{}, err
	}

	th, err := theme.Resolve(settings.Theme)
	if err != nil {
		return Site{}, err
	}

	id := defaultIdentity[lang]
	email := settings.Email
	if email == "" {
		email = social["email"]
	}
	if email != "" {
		if err := foundation.OptionalEmail("social.email")(email).ToError(); err != nil {
			return Site{}, err
		}
	}

	return Site{
		title:       orDefault(settings.Title, id.title),
		description: orDefault(settings.Description, id.description),
		author:      orDefault(settings.Author, id.author),
		url:         strings.TrimRight(settings.URL, "/"),
		language:    lang,
		theme:       th,
		social:      maps.Clone(social),
		email:       email,
	}, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

func (s Site) Title() string { return s.title }
func (s Site) Description() string { return s.description }
func (s Site) Author() string { return s.author }
func (s Site) URL() string { return s.url }
func (s Site) Language() i18n.Language { return s.language }

// Theme returns the active theme name.
func (s Site) Theme() string { return s.theme.Name }

// ThemeDefinition returns the resolved theme including its palette.
func (s Site) ThemeDefinition() theme.Theme { return s.theme }

// Email is the managing editor address, possibly empty.
func (s Site) Email() string { return s.email }

// SocialLinks returns a copy of the platform to URL/handle map.
func (s Site) SocialLinks() map[string]string {
	if s.social == nil {
		return map[string]string{}
	}
	return maps.Clone(s.social)
}

// FullURL joins the canonical site URL with a site-relative path.
func (s Site) FullURL(path string) string {
	if path == "" {
		return s.url + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.url + path
}

// Navigation returns the main navigation with names in the site language.
func (s Site) Navigation() ([]NavItem, error) {
	entries := []struct {
		key  i18n.Key
		href string
	}{
		{i18n.KeyHome, "/"},
		{i18n.KeyBlog, "/blog"},
		{i18n.KeyAbout, "/about"},
	}
	items := make([]NavItem, 0, len(entries))
	for _, e := range entries {
		name, err := i18n.Translate(s.language, e.key)
		if err != nil {
			return nil, foundationerrors.WrapError(err, foundationerrors.CategoryI18n, "navigation label").Fatal().Build()
		}
		items = append(items, NavItem{ID: string(e.key), Name: name, Href: e.href})
	}
	return items, nil
}

// ShowRSSLink reports whether pages link the feed.
func (s Site) ShowRSSLink() bool { return true }

// DefaultOGImage returns the fallback Open Graph image path.
func (s Site) DefaultOGImage() string { return DefaultOGImage }
