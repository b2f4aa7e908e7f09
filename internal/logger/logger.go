// Package logger wraps zerolog with the small API the bentogrid commands use.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	// Writer defaults to stderr so markup written to stdout stays clean.
	Writer io.Writer
}

// Fields are structured key/value pairs attached to an entry.
type Fields map[string]any

// Logger wraps zerolog. A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// LevelFor maps the CLI verbosity flag to a level name.
func LevelFor(verbose bool) string {
	if verbose {
		return zerolog.LevelDebugValue
	}
	return zerolog.LevelWarnValue
}

// Component returns a derived logger tagged with the emitting component.
func (l *Logger) Component(name string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str("component", name).Logger()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields Fields) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(map[string]any(fields)).Logger()}
}

// Debug writes a debug-level entry if enabled.
func (l *Logger) Debug(msg string, fields ...Fields) {
	if l == nil {
		return
	}
	withFields(l.base.Debug(), fields).Msg(msg)
}

// Info writes an informational entry.
func (l *Logger) Info(msg string, fields ...Fields) {
	if l == nil {
		return
	}
	withFields(l.base.Info(), fields).Msg(msg)
}

// Warn writes a warning entry.
func (l *Logger) Warn(msg string, fields ...Fields) {
	if l == nil {
		return
	}
	withFields(l.base.Warn(), fields).Msg(msg)
}

// Error writes an error entry including the supplied error.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

// Rejected records user input that was refused and left the settings unchanged.
func (l *Logger) Rejected(err error, input string) {
	if l == nil || err == nil {
		return
	}
	l.base.Warn().Err(err).Str("input", input).Msg("input rejected")
}

func withFields(event *zerolog.Event, fields []Fields) *zerolog.Event {
	for _, f := range fields {
		if len(f) > 0 {
			event = event.Fields(map[string]any(f))
		}
	}
	return event
}
