package adapter

import (
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger returns a debug-level logger writing JSON lines to a rotating
// file at path. An empty path disables logging; the terminal is never
// written to because the TUI owns it.
func NewLogger(path string) (zerolog.Logger, io.Closer) {
	if path == "" {
		return zerolog.Nop(), nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	logger := zerolog.New(file).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()

	return logger, file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
