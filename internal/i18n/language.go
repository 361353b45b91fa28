package i18n

import (
	"strings"

	"golang.org/x/text/language"

	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
)

// Language is a supported site language.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Supported lists the site languages in a stable order.
var Supported = []Language{English, Chinese}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Chinese})

// ParseLanguage maps a BCP 47 tag ("en", "en-US", "zh-CN", "zh-Hans") onto a
// supported Language. Tags that only match with low confidence are rejected.
func ParseLanguage(raw string) (Language, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", foundationerrors.I18nError("language is empty").Build()
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", foundationerrors.WrapError(err, foundationerrors.CategoryI18n, "invalid language tag").
			Fatal().
			WithContext("language", raw).
			Build()
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", foundationerrors.I18nError("unsupported language").
			WithContext("language", raw).
			WithContext("supported", supportedNames()).
			Build()
	}
	return Supported[idx], nil
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, s := range Supported {
		if s == l {
			return true
		}
	}
	return false
}

// FeedTag is the RSS <language> value for l.
func (l Language) FeedTag() string {
	switch l {
	case Chinese:
		return "zh-cn"
	default:
		return "en-us"
	}
}

func (l Language) String() string { return string(l) }

func supportedNames() string {
	names := make([]string, len(Supported))
	for i, s := range Supported {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
