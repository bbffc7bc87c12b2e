package internal

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger: human-readable console output in
// dev, JSON in prod.
func NewLogger(w io.Writer, env string, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if env != "prod" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
