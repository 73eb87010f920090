// Package dlog wraps the standard log package with a debug level that is
// compiled in only when building with the "debug" tag.
package dlog

import (
	"io"
	"log"
	"os"
)

// Logger writes operational messages through the embedded *log.Logger.
// Debug, Debugf and Debugln are no-ops unless built with -tags debug.
type Logger struct {
	*log.Logger
}

// Option configures a Logger created with New.
type Option func(*Logger)

// New returns a Logger writing to stderr with the standard flags.
func New(options ...Option) *Logger {
	l := &Logger{log.New(os.Stderr, "", log.LstdFlags)}

	for _, option := range options {
		option(l)
	}

	return l
}

// Discard returns a Logger that drops everything, used where stderr would
// interfere with a full-screen render.
func Discard() *Logger {
	return New(WithOutput(io.Discard))
}

func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.SetOutput(w)
	}
}

func WithPrefix(p string) Option {
	return func(l *Logger) {
		l.SetPrefix(p)
	}
}

func WithFlags(flag int) Option {
	return func(l *Logger) {
		l.SetFlags(flag)
	}
}
