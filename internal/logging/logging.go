// Package logging provides the structured logger the trainer logs
// through: a thin wrapper over charmbracelet/log with a
// package-level default instance configurable via WORD2VEC_LOG_LEVEL.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Level           string
	Output          io.Writer
	Prefix          string
	TimeFormat      string
	ReportCaller    bool
	ReportTimestamp bool
}

// DefaultOptions returns the options used when nothing overrides them.
func DefaultOptions() Options {
	return Options{
		Level:           "info",
		Output:          os.Stderr,
		Prefix:          "word2vec",
		TimeFormat:      time.RFC3339,
		ReportCaller:    false,
		ReportTimestamp: true,
	}
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// New creates a logger with the given options.
func New(opts Options) *log.Logger {
	return log.NewWithOptions(opts.Output, log.Options{
		Level:           parseLevel(opts.Level),
		Prefix:          opts.Prefix,
		TimeFormat:      opts.TimeFormat,
		ReportCaller:    opts.ReportCaller,
		ReportTimestamp: opts.ReportTimestamp,
	})
}

// NewDefault creates a logger from DefaultOptions, honoring a
// WORD2VEC_LOG_LEVEL environment override.
func NewDefault() *log.Logger {
	opts := DefaultOptions()
	if level := os.Getenv("WORD2VEC_LOG_LEVEL"); level != "" {
		opts.Level = level
	}
	return New(opts)
}

var defaultLogger = NewDefault()

// SetDefault replaces the package-level default logger.
func SetDefault(logger *log.Logger) { defaultLogger = logger }

// Default returns the package-level default logger.
func Default() *log.Logger { return defaultLogger }
