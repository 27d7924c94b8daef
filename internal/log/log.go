// Package log builds the shared slog logger and the attribute helpers used
// across the module.
package log

import (
	"log/slog"
	"os"
)

// BuildLogger returns a JSON logger writing to stderr, so simulation output
// on stdout stays clean.
func BuildLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}

func StringAttr(key, value string) slog.Attr {
	return slog.String(key, value)
}

func IntAttr(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func Int64Attr(key string, value int64) slog.Attr {
	return slog.Int64(key, value)
}

func AnyAttr(key string, value any) slog.Attr {
	return slog.Any(key, value)
}
