// Package logger provides logging functionality.

package logger

import (
	"biometric-query/internal/config"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level maps the numeric LOG_LEVEL setting to a zerolog level.
func Level(level int) zerolog.Level {
	switch level {
	case 0:
		return zerolog.DebugLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.WarnLevel
	case 3:
		return zerolog.ErrorLevel
	default:
		return zerolog.DebugLevel
	}
}

// NewLog initializes a logger. Output goes to stderr: stdout is reserved for the verdict token.
func NewLog(cfg *config.Config) *zerolog.Logger {
	return newLog(os.Stderr, cfg.Logger.Level)
}

func newLog(out io.Writer, level int) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	consoleWriter := zerolog.ConsoleWriter{Out: out, NoColor: true}
	Logger := zerolog.New(consoleWriter).With().Timestamp().Logger().Level(Level(level))
	return &Logger
}
