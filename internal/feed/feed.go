// Package feed turns published posts into an RSS 2.0 document.
package feed

import (
	"time"

	"github.com/jonboulle/clockwork"

	"git.home.luguber.info/inful/reverie/internal/config"
	"git.home.luguber.info/inful/reverie/internal/content"
	"git.home.luguber.info/inful/reverie/internal/version"
)

// DocsURL points readers of the raw feed at the format description.
const DocsURL = "https://www.rssboard.org/rss-specification"

// DefaultTTL is the refresh hint in minutes.
const DefaultTTL = 60

// Item is one feed entry derived from a published post.
type Item struct {
	Title        string
	PubDate      time.Time
	Description  string
	Link         string
	Categories   []string
	Author       string
	LastModified *time.Time
}

// Channel is the feed-level metadata.
type Channel struct {
	Title          string
	Description    string
	Link           string
	Language       string
	ManagingEditor string
	WebMaster      string
	Docs           string
	Generator      string
	LastBuildDate  time.Time
	TTL            int
	Stylesheet     string
}

// Build drops drafts, orders the rest newest first and maps them to items.
// Posts with the same publish time keep their input order.
func Build(records []content.Record, author string) []Item {
	published := content.Published(records)
	content.SortNewestFirst(published)

	items := make([]Item, 0, len(published))
	for _, r := range published {
		item := Item{
			Title:       r.Title,
			PubDate:     r.PublishDate,
			Description: r.Description,
			Link:        r.Permalink(),
			Categories:  append([]string(nil), r.Tags...),
			Author:      author,
		}
		if r.UpdatedDate != nil {
			updated := *r.UpdatedDate
			item.LastModified = &updated
		}
		items = append(items, item)
	}
	return items
}

// Option customizes NewChannel.
type Option func(*Channel)

// WithClock sets the clock used for the last build date.
func WithClock(c clockwork.Clock) Option {
	return func(ch *Channel) { ch.LastBuildDate = c.Now() }
}

// NewChannel derives channel metadata from the site and feed settings.
func NewChannel(site config.Site, settings config.FeedConfig, opts ...Option) Channel {
	ttl := settings.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	ch := Channel{
		Title:          site.Title(),
		Description:    site.Description(),
		Link:           site.FullURL("/"),
		Language:       site.Language().FeedTag(),
		ManagingEditor: site.Email(),
		WebMaster:      site.Email(),
		Docs:           DocsURL,
		Generator:      version.Generator(),
		LastBuildDate:  time.Now(),
		TTL:            ttl,
		Stylesheet:     settings.Stylesheet,
	}
	for _, opt := range opts {
		opt(&ch)
	}
	return ch
}
