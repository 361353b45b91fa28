// Package dates formats post timestamps for the active site language.
package dates

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
	"git.home.luguber.info/inful/reverie/internal/i18n"
)

const day = 24 * time.Hour

// Formatter renders timestamps in one language and time zone.
// It holds no mutable state and is safe for concurrent use.
type Formatter struct {
	lang  i18n.Language
	loc   *time.Location
	clock clockwork.Clock
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocation sets the zone used to pick the calendar day. Default UTC.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithClock sets the clock Relative measures against.
func WithClock(c clockwork.Clock) Option {
	return func(f *Formatter) {
		if c != nil {
			f.clock = c
		}
	}
}

// NewFormatter returns a Formatter for lang.
func NewFormatter(lang i18n.Language, opts ...Option) (*Formatter, error) {
	if !lang.Valid() {
		return nil, foundationerrors.I18nError("unsupported language for date formatting").
			WithContext("language", string(lang)).
			Build()
	}
	f := &Formatter{lang: lang, loc: time.UTC, clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Long is the most verbose form: "January 15, 2024" / "2024 年 1 月 15 日".
func (f *Formatter) Long(t time.Time) string {
	t = t.In(f.loc)
	if f.lang == i18n.Chinese {
		return chinese(t)
	}
	return t.Format("January 02, 2006")
}

// Medium is used in post metadata: "Jan 15, 2024" / "2024 年 1 月 15 日".
func (f *Formatter) Medium(t time.Time) string {
	t = t.In(f.loc)
	if f.lang == i18n.Chinese {
		return chinese(t)
	}
	return t.Format("Jan 02, 2006")
}

// Compact is used on post cards. It currently matches Medium.
func (f *Formatter) Compact(t time.Time) string {
	return f.Medium(t)
}

// ISO returns the machine-readable calendar date, e.g. for <time datetime>.
func (f *Formatter) ISO(t time.Time) string {
	return t.In(f.loc).Format(time.DateOnly)
}

func chinese(t time.Time) string {
	return fmt.Sprintf("%d 年 %d 月 %d 日", t.Year(), int(t.Month()), t.Day())
}

// ElapsedDays is the number of whole 24h periods between t and now,
// truncated toward zero. Timestamps in the future count as zero days.
func ElapsedDays(t, now time.Time) int {
	elapsed := now.Sub(t)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / day)
}

// Relative describes how long ago t was, bucketed into today, yesterday,
// days, weeks, months (30 days) and years (365 days).
func (f *Formatter) Relative(t time.Time) string {
	days := ElapsedDays(t, f.clock.Now())
	if f.lang == i18n.Chinese {
		return relativeChinese(days)
	}
	return relativeEnglish(days)
}

func relativeChinese(days int) string {
	switch {
	case days == 0:
		return "今天"
	case days == 1:
		return "昨天"
	case days < 7:
		return fmt.Sprintf("%d天前", days)
	case days < 30:
		return fmt.Sprintf("%d周前", days/7)
	case days < 365:
		return fmt.Sprintf("%d个月前", days/30)
	default:
		return fmt.Sprintf("%d年前", days/365)
	}
}

func relativeEnglish(days int) string {
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return ago(days, "day")
	case days < 30:
		return ago(days/7, "week")
	case days < 365:
		return ago(days/30, "month")
	default:
		return ago(days/365, "year")
	}
}

func ago(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
