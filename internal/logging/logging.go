package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds a logger for the given level. Development output goes through
// zerolog's console writer; anything else is JSON.
func New(w io.Writer, level string, development bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if development {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Setup installs a stdout logger as the global zerolog logger.
func Setup(level string, development bool) zerolog.Logger {
	logger := New(os.Stdout, level, development)
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	return logger
}
