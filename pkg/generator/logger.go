package generator

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the generator's logger. The batch process runs both
// locally and in CI, so human-readable console output is the default; set
// TIMETABLE_LOG_JSON for machine-parseable lines.
func NewLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if os.Getenv("TIMETABLE_LOG_JSON") != "" {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	return logger.Level(zerolog.InfoLevel)
}
