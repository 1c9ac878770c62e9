package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lepinkainen/humanlog"
)

// New returns a human-readable slog logger writing to w at the named level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	handler := humanlog.NewHandler(w, &humanlog.Options{
		Level: lvl,
	})
	return slog.New(handler)
}

// Init builds a logger with New and installs it as the slog default.
func Init(w io.Writer, level string) *slog.Logger {
	logger := New(w, level)
	slog.SetDefault(logger)
	return logger
}
