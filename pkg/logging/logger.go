// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for lshdup components.
//
// It is a thin wrapper around log/slog: stderr output by default, JSON
// on request, and a Service attribute attached to every entry. There is
// no file logging or exporter extension point here — a CLI that builds
// indexes in a single process and prints a result table has no need for
// either, unlike the service this package was adapted from.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts the names above, case-insensitively.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, true
	case "info", "":
		return LevelInfo, true
	case "warn":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures a Logger. A zero-value Config logs Debug+ to stderr
// as text (LevelDebug is the zero Level).
type Config struct {
	// Level sets the minimum level; entries below it are discarded.
	Level Level

	// Service is attached to every entry as the "service" attribute.
	Service string

	// JSON selects JSON output instead of text.
	JSON bool

	// Quiet suppresses all output. Useful when a CLI command is asked
	// to print only its result table.
	Quiet bool
}

// Logger wraps slog.Logger with lshdup's level and service conventions.
type Logger struct {
	slog *slog.Logger
}

// New constructs a Logger from config.
func New(config Config) *Logger {
	opts := &slog.HandlerOptions{Level: config.Level.toSlogLevel()}

	var handler slog.Handler
	if config.Quiet {
		handler = slog.NewTextHandler(discard{}, opts)
	} else if config.JSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	if config.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", config.Service)})
	}

	return &Logger{slog: slog.New(handler)}
}

// Default returns an Info-level, text, stderr logger tagged "lshdup".
func Default() *Logger {
	return New(Config{Level: LevelInfo, Service: "lshdup"})
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a child logger carrying the given attributes on every
// subsequent entry. The parent is not modified.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...)}
}

// Slog returns the underlying slog.Logger for callers that need direct
// access (LogAttrs, custom Record handling).
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
