package config

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// NewLogger creates the logger described by cfg, writing to w.
func NewLogger(cfg Log, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level '%s'", cfg.Level)
	}

	switch strings.ToLower(cfg.Formatter) {
	case "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), errors.Errorf("invalid log formatter '%s'", cfg.Formatter)
	}

	return zerolog.New(zerolog.SyncWriter(w)).Level(level).With().Timestamp().Logger(), nil
}
