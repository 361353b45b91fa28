// Package i18n holds the UI label tables for every supported site language.
//
// Lookups never fall back to another language: an unsupported language or a
// key without a translation is reported as an i18n error so the build stops
// instead of rendering a page with blank labels.
package i18n

import (
	"fmt"
	"slices"

	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
)

// Translate returns the label for key in lang.
func Translate(lang Language, key Key) (string, error) {
	table, ok := tables[lang]
	if !ok {
		return "", foundationerrors.I18nError("unsupported language").
			WithContext("language", string(lang)).
			WithContext("supported", supportedNames()).
			Build()
	}
	value, ok := table[key]
	if !ok {
		return "", foundationerrors.I18nError("missing translation").
			WithContext("language", string(lang)).
			WithContext("key", string(key)).
			Build()
	}
	return value, nil
}

// MustTranslate is Translate for compile-time keys. It panics on failure.
func MustTranslate(lang Language, key Key) string {
	value, err := Translate(lang, key)
	if err != nil {
		panic(err)
	}
	return value
}

// Keys returns the full key set in sorted order.
func Keys() []Key {
	seen := make(map[Key]struct{})
	for _, table := range tables {
		for k := range table {
			seen[k] = struct{}{}
		}
	}
	keys := make([]Key, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Table returns a copy of the labels for lang, keyed by label name.
func Table(lang Language) (map[string]string, error) {
	table, ok := tables[lang]
	if !ok {
		return nil, foundationerrors.I18nError("unsupported language").
			WithContext("language", string(lang)).
			Build()
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[string(k)] = v
	}
	return out, nil
}

// Validate checks that every key present for one language is present for all
// of them. It reports every gap, not just the first.
func Validate() error {
	return validateTables(tables)
}

func validateTables(t map[Language]map[Key]string) error {
	all := make(map[Key]struct{})
	for _, table := range t {
		for k := range table {
			all[k] = struct{}{}
		}
	}
	var missing []string
	for _, lang := range Supported {
		table, ok := t[lang]
		if !ok {
			missing = append(missing, fmt.Sprintf("%s:*", lang))
			continue
		}
		for k := range all {
			if _, ok := table[k]; !ok {
				missing = append(missing, fmt.Sprintf("%s:%s", lang, k))
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return foundationerrors.I18nError("incomplete translations").
		WithContext("missing", missing).
		Build()
}

// Translator binds lookups to one language.
type Translator struct {
	lang Language
}

// NewTranslator returns a Translator for lang, failing for unsupported languages.
func NewTranslator(lang Language) (*Translator, error) {
	if _, ok := tables[lang]; !ok {
		return nil, foundationerrors.I18nError("unsupported language").
			WithContext("language", string(lang)).
			WithContext("supported", supportedNames()).
			Build()
	}
	return &Translator{lang: lang}, nil
}

// Language returns the bound language.
func (t *Translator) Language() Language { return t.lang }

// T returns the label for key.
func (t *Translator) T(key Key) (string, error) {
	return Translate(t.lang, key)
}

// Must returns the label for key and panics when it is missing.
func (t *Translator) Must(key Key) string {
	return MustTranslate(t.lang, key)
}
