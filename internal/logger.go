package internal

import (
	"io"
	"log/slog"
	"time"
)

// NewLogger returns the process logger tagged with service=wardrobe. prod
// writes JSON with UTC timestamps; dev writes text. Unknown levels mean info.
func NewLogger(w io.Writer, env string, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if env == "prod" {
		opts.ReplaceAttr = utcTimestamps
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With(slog.String("service", "wardrobe"))
}

func utcTimestamps(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}
