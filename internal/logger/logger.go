// Package logger wraps charmbracelet/log with the level helpers used across the app.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"htmxtodo/internal/constants"
)

// Options configures a Logger.
type Options struct {
	Level     log.Level
	Formatter log.Formatter
	Prefix    string
}

// OptionsFor returns the options for an environment: JSON at info level in production,
// human-readable text at debug level everywhere else.
func OptionsFor(env string) Options {
	if env == constants.EnvProduction {
		return Options{Level: log.InfoLevel, Formatter: log.JSONFormatter}
	}
	return Options{Level: log.DebugLevel, Formatter: log.TextFormatter}
}

type Logger struct {
	l *log.Logger
}

// New creates a logger writing to w configured for env.
func New(w io.Writer, env string) *Logger {
	return NewWithOptions(w, OptionsFor(env))
}

func NewWithOptions(w io.Writer, opts Options) *Logger {
	return &Logger{
		l: log.NewWithOptions(w, log.Options{
			Level:           opts.Level,
			Formatter:       opts.Formatter,
			Prefix:          opts.Prefix,
			ReportTimestamp: opts.Formatter == log.JSONFormatter,
		}),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWithOptions(io.Discard, Options{Level: log.FatalLevel})
}

func (l *Logger) Info(msg string, keyvals ...any) {
	l.l.Info(msg, keyvals...)
}

func (l *Logger) Warn(msg string, keyvals ...any) {
	l.l.Warn(msg, keyvals...)
}

func (l *Logger) Debug(msg string, keyvals ...any) {
	l.l.Debug(msg, keyvals...)
}

// Error logs at error level. When v is an error it is attached under "err" and its message
// becomes the log message, unless keyvals has odd length, in which case the leading
// string is used as the message instead.
func (l *Logger) Error(v any, keyvals ...any) {
	err, ok := v.(error)
	if !ok {
		l.l.Error(v, keyvals...)
		return
	}

	msg := err.Error()
	if len(keyvals)%2 == 1 {
		if s, ok := keyvals[0].(string); ok {
			msg = s
			keyvals = keyvals[1:]
		}
	}

	l.l.Error(msg, append([]any{"err", err}, keyvals...)...)
}

// Fatal logs v like Error and exits the process with status 1.
func (l *Logger) Fatal(v any, keyvals ...any) {
	l.Error(v, keyvals...)
	os.Exit(1)
}

// With returns a child logger that always includes keyvals.
func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{l: l.l.With(keyvals...)}
}

// Writer returns an io.Writer that logs every line written to it at info level.
func (l *Logger) Writer() io.Writer {
	return l.l.StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel}).Writer()
}
