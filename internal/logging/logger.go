// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error, fatal, panic, disabled.
	Level string

	// Format is json or console.
	Format string

	// App, when set, is attached to every line as the "app" field.
	App string

	// Caller includes file:line in each line.
	Caller bool

	// Timestamp enables the "time" field.
	Timestamp bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the server's logging defaults.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		App:       "reelmatch",
		Timestamp: true,
		Output:    os.Stderr,
	}
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

//nolint:gochecknoinits // logging must work before Init is called
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log = build(DefaultConfig())
}

// Init replaces the global logger. It is safe to call more than once.
func Init(cfg Config) {
	logger := build(cfg)

	mu.Lock()
	defer mu.Unlock()
	log = logger
}

// build applies cfg to the global level and returns the configured logger.
func build(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	output := cfg.Output
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(output).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	if cfg.App != "" {
		ctx = ctx.Str("app", cfg.App)
	}
	return ctx.Logger()
}

// parseLevel converts a level name to a zerolog.Level. Unknown or empty
// names fall back to info.
func parseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return parsed
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the global logger. Used by tests.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

// Debug starts a debug message on the global logger.
func Debug() *zerolog.Event { return current().Debug() }

// Info starts an info message on the global logger.
func Info() *zerolog.Event { return current().Info() }

// Warn starts a warning message on the global logger.
func Warn() *zerolog.Event { return current().Warn() }

// Error starts an error message on the global logger.
func Error() *zerolog.Event { return current().Error() }

// Fatal starts a fatal message; os.Exit(1) follows the write.
func Fatal() *zerolog.Event { return current().Fatal() }
