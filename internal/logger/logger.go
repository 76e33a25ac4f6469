// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-auth-keeper server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

type options struct {
	level  zerolog.Level
	output io.Writer
}

// Option customizes a logger built by [NewLogger].
type Option func(*options)

// WithLevel sets the global minimal level. Debug by default.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithOutput redirects log output. os.Stdout by default.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "auth-server").
//
// The logger is configured with:
//   - global log level (Debug unless overridden with [WithLevel]);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     instead of the default file:line format.
//
// Output is JSON, written to os.Stdout unless overridden with [WithOutput].
func NewLogger(role string, opts ...Option) *Logger {
	o := options{
		level:  zerolog.DebugLevel,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.SetGlobalLevel(o.level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(o.output).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached to r's context by
// the trace id middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
