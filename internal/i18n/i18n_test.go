package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
)

func TestTables_SameKeySetForEveryLanguage(t *testing.T) {
	require.NoError(t, Validate())

	for _, a := range Supported {
		for _, b := range Supported {
			assert.Len(t, tables[b], len(tables[a]), "%s vs %s", a, b)
			for k := range tables[a] {
				_, ok := tables[b][k]
				assert.True(t, ok, "key %q present in %s but missing in %s", k, a, b)
			}
		}
	}
}

func TestValidateTables_ReportsEveryGap(t *testing.T) {
	broken := map[Language]map[Key]string{
		English: {KeyHome: "Home", KeyBlog: "Blog"},
		Chinese: {KeyHome: "首页", KeyAbout: "关于"},
	}

	err := validateTables(broken)
	require.Error(t, err)
	classified, ok := foundationerrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, foundationerrors.CategoryI18n, classified.Category())
	missing, _ := classified.Context().Get("missing")
	assert.Equal(t, []string{"en:about", "zh:blog"}, missing)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		lang Language
		key  Key
		want string
	}{
		{English, KeyHome, "Home"},
		{Chinese, KeyHome, "首页"},
		{English, KeyReadingTimePrefix, ""},
		{Chinese, KeyReadingTimePrefix, "约"},
		{Chinese, KeyReadingTimeSuffix, "分钟阅读"},
		{English, KeyRSSFeed, "RSS Feed"},
	}
	for _, tt := range tests {
		t.Run(string(tt.lang)+"/"+string(tt.key), func(t *testing.T) {
			got, err := Translate(tt.lang, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate_UnsupportedLanguage(t *testing.T) {
	_, err := Translate(Language("fr"), KeyHome)
	require.Error(t, err)
	assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryI18n))
}

func TestTranslate_UnknownKey(t *testing.T) {
	_, err := Translate(English, Key("noSuchLabel"))
	require.Error(t, err)
	classified, _ := foundationerrors.AsClassified(err)
	key, _ := classified.Context().GetString("key")
	assert.Equal(t, "noSuchLabel", key)
}

func TestMustTranslate_Panics(t *testing.T) {
	assert.Panics(t, func() { MustTranslate(English, Key("noSuchLabel")) })
	assert.NotPanics(t, func() { MustTranslate(Chinese, KeyBlog) })
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"en", English},
		{"en-US", English},
		{"EN", English},
		{"zh", Chinese},
		{"zh-CN", Chinese},
		{"zh-Hans", Chinese},
		{" zh ", Chinese},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLanguage_Rejects(t *testing.T) {
	for _, in := range []string{"", "fr", "de-DE", "not a tag!"} {
		_, err := ParseLanguage(in)
		assert.Error(t, err, in)
	}
}

func TestTranslator(t *testing.T) {
	tr, err := NewTranslator(Chinese)
	require.NoError(t, err)
	assert.Equal(t, Chinese, tr.Language())
	assert.Equal(t, "标签", tr.Must(KeyTags))

	_, err = NewTranslator(Language("ja"))
	assert.Error(t, err)
}

func TestKeysAndTable(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, len(tables[English]))
	assert.IsIncreasing(t, keys)

	table, err := Table(English)
	require.NoError(t, err)
	assert.Equal(t, "Blog", table["blog"])
}

func TestLanguage_FeedTag(t *testing.T) {
	assert.Equal(t, "en-us", English.FeedTag())
	assert.Equal(t, "zh-cn", Chinese.FeedTag())
	assert.True(t, Chinese.Valid())
	assert.False(t, Language("fr").Valid())
}
