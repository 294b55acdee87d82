package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyLongname   = "longname"
	KeyKind       = "kind"
	KeyFile       = "file"
	KeyPath       = "path"
	KeyPage       = "page"
	KeyCount      = "count"
	KeyTarget     = "target"
	KeyName       = "name"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Longname(name string) slog.Attr   { return slog.String(KeyLongname, name) }
func Kind(kind string) slog.Attr       { return slog.String(KeyKind, kind) }
func File(name string) slog.Attr       { return slog.String(KeyFile, name) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Page(link string) slog.Attr       { return slog.String(KeyPage, link) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Target(longname string) slog.Attr { return slog.String(KeyTarget, longname) }
func Name(name string) slog.Attr       { return slog.String(KeyName, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
