package dates

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/reverie/internal/i18n"
)

var fixed = time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)

func newFormatter(t *testing.T, lang i18n.Language, opts ...Option) *Formatter {
	t.Helper()
	f, err := NewFormatter(lang, opts...)
	require.NoError(t, err)
	return f
}

func TestLong(t *testing.T) {
	assert.Equal(t, "January 15, 2024", newFormatter(t, i18n.English).Long(fixed))
	assert.Equal(t, "2024 年 1 月 15 日", newFormatter(t, i18n.Chinese).Long(fixed))
}

func TestLong_ZeroPadsEnglishDay(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "March 05, 2024", newFormatter(t, i18n.English).Long(d))
	assert.Equal(t, "2024 年 3 月 5 日", newFormatter(t, i18n.Chinese).Long(d))
}

func TestMediumAndCompact(t *testing.T) {
	en := newFormatter(t, i18n.English)
	zh := newFormatter(t, i18n.Chinese)

	assert.Equal(t, "Jan 15, 2024", en.Medium(fixed))
	assert.Equal(t, "Jan 15, 2024", en.Compact(fixed))
	assert.Equal(t, "2024 年 1 月 15 日", zh.Medium(fixed))
	assert.Equal(t, "2024 年 1 月 15 日", zh.Compact(fixed))
	assert.Equal(t, "2024-01-15", en.ISO(fixed))
}

func TestLocationChangesCalendarDay(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*60*60)
	late := time.Date(2024, time.January, 15, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "Jan 15, 2024", newFormatter(t, i18n.English).Medium(late))
	assert.Equal(t, "2024 年 1 月 16 日", newFormatter(t, i18n.Chinese, WithLocation(shanghai)).Medium(late))
}

func TestRelative(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	en := newFormatter(t, i18n.English, WithClock(clock))
	zh := newFormatter(t, i18n.Chinese, WithClock(clock))

	tests := []struct {
		name string
		ago  time.Duration
		en   string
		zh   string
	}{
		{"same day", 3 * time.Hour, "Today", "今天"},
		{"just under a day", 23*time.Hour + 59*time.Minute, "Today", "今天"},
		{"yesterday", 24 * time.Hour, "Yesterday", "昨天"},
		{"days", 3 * day, "3 days ago", "3天前"},
		{"six days", 6 * day, "6 days ago", "6天前"},
		{"one week", 7 * day, "1 week ago", "1周前"},
		{"weeks", 20 * day, "2 weeks ago", "2周前"},
		{"one month", 30 * day, "1 month ago", "1个月前"},
		{"months", 200 * day, "6 months ago", "6个月前"},
		{"one year", 365 * day, "1 year ago", "1年前"},
		{"years", 800 * day, "2 years ago", "2年前"},
		{"future", -5 * day, "Today", "今天"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := now.Add(-tt.ago)
			assert.Equal(t, tt.en, en.Relative(ts))
			assert.Equal(t, tt.zh, zh.Relative(ts))
		})
	}
}

func TestRelative_FollowsClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(fixed)
	f := newFormatter(t, i18n.English, WithClock(clock))

	assert.Equal(t, "Today", f.Relative(fixed))
	clock.Advance(24 * time.Hour)
	assert.Equal(t, "Yesterday", f.Relative(fixed))
}

func TestElapsedDays(t *testing.T) {
	assert.Equal(t, 0, ElapsedDays(fixed, fixed))
	assert.Equal(t, 1, ElapsedDays(fixed, fixed.Add(47*time.Hour)))
	assert.Equal(t, 2, ElapsedDays(fixed, fixed.Add(48*time.Hour)))
	assert.Equal(t, 0, ElapsedDays(fixed.Add(72*time.Hour), fixed))
}

func TestNewFormatter_UnsupportedLanguage(t *testing.T) {
	_, err := NewFormatter(i18n.Language("fr"))
	assert.Error(t, err)
}
