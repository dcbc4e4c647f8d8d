// Package logging installs the default slog logger.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Rotating returns a size-rotated log file writer.
func Rotating(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
}

// New returns a text logger writing to w at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Setup makes a rotating file logger at path the default logger. The
// returned closer flushes and closes the file.
func Setup(path string, level slog.Level) io.Closer {
	w := Rotating(path)

	slog.SetDefault(New(w, level))

	return w
}
