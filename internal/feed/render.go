package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
)

// Feed writers do not expose a per-item lastBuildDate or the xml-stylesheet
// instruction, so the RSS document is encoded directly.
type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title          string    `xml:"title"`
	Link           string    `xml:"link"`
	Description    string    `xml:"description"`
	Language       string    `xml:"language,omitempty"`
	ManagingEditor string    `xml:"managingEditor,omitempty"`
	WebMaster      string    `xml:"webMaster,omitempty"`
	Docs           string    `xml:"docs,omitempty"`
	Generator      string    `xml:"generator,omitempty"`
	LastBuildDate  string    `xml:"lastBuildDate,omitempty"`
	TTL            int       `xml:"ttl,omitempty"`
	Items          []rssItem `xml:"item"`
}

type rssItem struct {
	Title         string   `xml:"title"`
	Link          string   `xml:"link"`
	Description   string   `xml:"description,omitempty"`
	PubDate       string   `xml:"pubDate"`
	GUID          rssGUID  `xml:"guid"`
	Categories    []string `xml:"category"`
	Author        string   `xml:"author,omitempty"`
	LastBuildDate string   `xml:"lastBuildDate,omitempty"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// Render writes the feed. Item links are made absolute against the channel link.
func Render(w io.Writer, ch Channel, items []Item) error {
	base, err := url.Parse(ch.Link)
	if err != nil || !base.IsAbs() {
		return foundationerrors.FeedError("channel link must be an absolute URL").
			WithContext("link", ch.Link).
			WithCause(err).
			Build()
	}

	doc := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:          ch.Title,
			Link:           ch.Link,
			Description:    ch.Description,
			Language:       ch.Language,
			ManagingEditor: ch.ManagingEditor,
			WebMaster:      ch.WebMaster,
			Docs:           ch.Docs,
			Generator:      ch.Generator,
			LastBuildDate:  formatDate(ch.LastBuildDate),
			TTL:            ch.TTL,
			Items:          make([]rssItem, 0, len(items)),
		},
	}
	for _, it := range items {
		link := absolute(base, it.Link)
		ri := rssItem{
			Title:       it.Title,
			Link:        link,
			Description: it.Description,
			PubDate:     formatDate(it.PubDate),
			GUID:        rssGUID{IsPermaLink: true, Value: link},
			Categories:  it.Categories,
			Author:      it.Author,
		}
		if it.LastModified != nil {
			ri.LastBuildDate = formatDate(*it.LastModified)
		}
		doc.Channel.Items = append(doc.Channel.Items, ri)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write feed header: %w", err)
	}
	if ch.Stylesheet != "" {
		var href strings.Builder
		if err := xml.EscapeText(&href, []byte(ch.Stylesheet)); err != nil {
			return fmt.Errorf("escape stylesheet: %w", err)
		}
		if _, err := fmt.Fprintf(w, "<?xml-stylesheet href=\"%s\" type=\"text/xsl\"?>\n", href.String()); err != nil {
			return fmt.Errorf("write stylesheet instruction: %w", err)
		}
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return foundationerrors.FeedError("encode feed").WithCause(err).Build()
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write feed: %w", err)
	}
	return nil
}

func absolute(base *url.URL, link string) string {
	ref, err := url.Parse(link)
	if err != nil {
		return link
	}
	return base.ResolveReference(ref).String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC1123Z)
}
