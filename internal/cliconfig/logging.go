package cliconfig

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger().
	Level(zerolog.WarnLevel)

// Logger returns the bootstrap logger used before configuration is loaded.
func Logger() zerolog.Logger {
	return logger
}

// NewLogger builds the logger described by cfg, writing to w.
// cfg must have passed Validate.
func NewLogger(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if cfg.LogFormat != FormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Logger().Level(level), nil
}
