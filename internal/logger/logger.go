// Package logger carries the diagnostics of adapter resolution and lazy
// loading. Entries are structured so a substitution or a failed load can be
// traced back to the component and library involved:
//
//	component   adapter name being resolved or loaded
//	requested   library the caller asked for
//	library     library that actually rendered
//	load_id     correlates the start and end of one lazy load
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field keys shared by every diagnostic.
const (
	FieldComponent = "component"
	FieldRequested = "requested"
	FieldLibrary   = "library"
	FieldLoadID    = "load_id"
)

// Options select the level, the sink and whether entries are JSON or
// console formatted.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is the handle the registry, the factory and the CLI write through.
// A nil *Logger drops everything, so a registry built without WithLogger
// stays silent.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger. An empty level means info; diagnostics go to stderr
// unless Writer is set so rendered output on stdout stays clean.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stderr
	if opts.Writer != nil {
		out = opts.Writer
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

func parseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// Nop returns a logger that drops every entry.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithFields returns a child logger that stamps fields on every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Fields(fields).Logger()}
}

// With is WithFields for a single key.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// ForComponent returns a child logger for one adapter resolution. Unset
// libraries are left out rather than logged as empty strings.
func (l *Logger) ForComponent(name, requested, resolved string) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.zl.With().Str(FieldComponent, name)
	if requested != "" {
		ctx = ctx.Str(FieldRequested, requested)
	}
	if resolved != "" {
		ctx = ctx.Str(FieldLibrary, resolved)
	}
	return &Logger{zl: ctx.Logger()}
}

func (l *Logger) Debug(msg string) {
	if l != nil {
		l.zl.Debug().Msg(msg)
	}
}

func (l *Logger) Info(msg string) {
	if l != nil {
		l.zl.Info().Msg(msg)
	}
}

func (l *Logger) Warn(msg string) {
	if l != nil {
		l.zl.Warn().Msg(msg)
	}
}

// Error logs msg at error level with err attached under "error".
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.zl.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
