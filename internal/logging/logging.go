// SPDX-License-Identifier: MIT

// Package logging builds the zerolog logger used by dequectl.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/AlekhinALex/SegmentedDeque/internal/config"
)

// SourceField tags every record with the emitting component.
const SourceField = "src"

// New returns a logger writing to w at level, in console or JSON format.
func New(level, format string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}

	var out io.Writer
	switch format {
	case config.FormatJSON:
		out = w
	case config.FormatConsole, "":
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	default:
		return zerolog.Nop(), fmt.Errorf("log format %q: %w", format, config.ErrInvalidConfig)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// FromConfig is New driven by cfg.Log.
func FromConfig(cfg *config.Config, w io.Writer) (zerolog.Logger, error) {
	return New(cfg.Log.Level, cfg.Log.Format, w)
}

// Component returns a child logger tagged with SourceField=name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(SourceField, name).Logger()
}
