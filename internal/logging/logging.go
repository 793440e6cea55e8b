package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log formats accepted by [New].
const (
	FormatPlain = "plain"
	FormatText  = "text"
	FormatJSON  = "json"
)

// New returns a timestamped zerolog logger writing to w.
// The level is parsed with zerolog.ParseLevel, and the format selects
// between console output and raw JSON lines.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to parse log level: %w", err)
	}

	w, err = NewConsoleWriterWith(w, format)
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(w).Level(logLevel).With().Timestamp().Logger(), nil
}

// NewConsoleWriterWith parses the log format and wraps w in an appropriate
// writer.
func NewConsoleWriterWith(w io.Writer, format string) (io.Writer, error) {
	switch strings.ToLower(format) {
	case FormatPlain:
		return newConsoleWriter(w, true), nil

	case FormatText:
		return newConsoleWriter(w, false), nil

	case FormatJSON:
		return w, nil

	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
}

// newConsoleWriter creates a zerolog console writer that formats log messages
// as text for the console.
func newConsoleWriter(w io.Writer, noColor bool) *zerolog.ConsoleWriter {
	return &zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
	}
}
