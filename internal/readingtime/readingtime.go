// Package readingtime estimates how long a post takes to read when it mixes
// Chinese and English text.
//
// Ideographs are counted one by one and read at IdeographsPerMinute; the
// remaining text is split into whitespace-delimited words read at
// WordsPerMinute. The two durations are summed, rounded up to a whole minute
// and floored at one minute.
package readingtime

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/reverie/internal/i18n"
)

const (
	IdeographsPerMinute = 300
	WordsPerMinute      = 200
)

// Ratio thresholds used by DetectPrimaryLanguage.
const (
	ChineseThreshold = 0.7
	EnglishThreshold = 0.3
)

var (
	reTag        = regexp.MustCompile(`<[^>]*>`)
	reFencedCode = regexp.MustCompile("(?s)```.*?```")
	reInlineCode = regexp.MustCompile("`[^`]*`")
	reLink       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	reMarkers    = regexp.MustCompile("[#*_~`]")
	reSpace      = regexp.MustCompile(`\s+`)
)

// PlainText strips markup from content: tags, fenced and inline code, link
// targets (keeping link text) and emphasis/heading markers. Whitespace is
// collapsed to single spaces.
func PlainText(content string) string {
	s := reTag.ReplaceAllString(content, "")
	s = reFencedCode.ReplaceAllString(s, "")
	s = reInlineCode.ReplaceAllString(s, "")
	s = reLink.ReplaceAllString(s, "$1")
	s = reMarkers.ReplaceAllString(s, "")
	s = reSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsIdeograph reports whether r is in the CJK Unified Ideographs block (U+4E00..U+9FFF).
func IsIdeograph(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// WordCount splits a post into its two reading classes.
type WordCount struct {
	Total   int `json:"total"`
	Chinese int `json:"chinese"`
	English int `json:"english"`
}

// Count classifies the plain text of content. Words are counted after the
// ideographs have been removed, so "你好world" is one word and two ideographs.
func Count(content string) WordCount {
	plain := PlainText(content)
	var ideographs int
	rest := strings.Map(func(r rune) rune {
		if IsIdeograph(r) {
			ideographs++
			return -1
		}
		return r
	}, plain)
	words := len(strings.Fields(rest))
	return WordCount{Total: ideographs + words, Chinese: ideographs, English: words}
}

// Minutes is the estimated reading time of content in whole minutes, at least 1.
func Minutes(content string) int {
	return minutesFor(Count(content))
}

func minutesFor(c WordCount) int {
	total := float64(c.Chinese)/IdeographsPerMinute + float64(c.English)/WordsPerMinute
	m := int(math.Ceil(total))
	if m < 1 {
		return 1
	}
	return m
}

// Label renders minutes with the language's reading-time prefix and suffix:
// "约5分钟阅读" when the language has a prefix, "5 min read" otherwise.
func Label(lang i18n.Language, minutes int) (string, error) {
	prefix, err := i18n.Translate(lang, i18n.KeyReadingTimePrefix)
	if err != nil {
		return "", err
	}
	suffix, err := i18n.Translate(lang, i18n.KeyReadingTimeSuffix)
	if err != nil {
		return "", err
	}
	n := strconv.Itoa(minutes)
	if prefix != "" {
		return prefix + n + suffix, nil
	}
	return n + " " + suffix, nil
}

// Estimate combines Minutes and Label. Malformed or empty content degrades to
// the one-minute floor; only an unsupported language is an error.
func Estimate(lang i18n.Language, content string) (string, error) {
	return Label(lang, Minutes(content))
}

// Primary is the dominant language of a post.
type Primary string

const (
	PrimaryChinese Primary = "zh"
	PrimaryEnglish Primary = "en"
	PrimaryMixed   Primary = "mixed"
)

// DetectPrimaryLanguage classifies content by the share of ideographs among
// all counted units: above ChineseThreshold is Chinese, below
// EnglishThreshold is English, anything between (or empty content) is mixed.
func DetectPrimaryLanguage(content string) Primary {
	return primaryFor(Count(content))
}

func primaryFor(c WordCount) Primary {
	switch {
	case c.Chinese == 0 && c.English > 0:
		return PrimaryEnglish
	case c.English == 0 && c.Chinese > 0:
		return PrimaryChinese
	case c.Total == 0:
		return PrimaryMixed
	}
	ratio := float64(c.Chinese) / float64(c.Total)
	switch {
	case ratio > ChineseThreshold:
		return PrimaryChinese
	case ratio < EnglishThreshold:
		return PrimaryEnglish
	default:
		return PrimaryMixed
	}
}

// Stats bundles everything the page layer shows about a post's length.
type Stats struct {
	Words    WordCount `json:"words"`
	Minutes  int       `json:"minutes"`
	Label    string    `json:"label"`
	Language Primary   `json:"primaryLanguage"`
}

// Analyze computes Stats for content in lang.
func Analyze(lang i18n.Language, content string) (Stats, error) {
	c := Count(content)
	m := minutesFor(c)
	label, err := Label(lang, m)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Words: c, Minutes: m, Label: label, Language: primaryFor(c)}, nil
}
