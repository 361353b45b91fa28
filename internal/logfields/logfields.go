package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeySlug       = "slug"
	KeyPath       = "path"
	KeyTheme      = "theme"
	KeyLanguage   = "language"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyOutput     = "output"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Slug(s string) slog.Attr       { return slog.String(KeySlug, s) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Theme(name string) slog.Attr   { return slog.String(KeyTheme, name) }
func Language(tag string) slog.Attr { return slog.String(KeyLanguage, tag) }
func Stage(name string) slog.Attr   { return slog.String(KeyStage, name) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Output(dir string) slog.Attr   { return slog.String(KeyOutput, dir) }

// Duration reports d in fractional milliseconds under KeyDurationMS.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
