// Copyright (c) Hadi Cahyadi (cumulus13) 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const (
	// LogLevelEnvVar sets the log level regardless of the executable name.
	LogLevelEnvVar = "MAKECOLORS_LOG_LEVEL"
	// LogFormatEnvVar selects "json" output instead of the pretty console format.
	LogFormatEnvVar = "MAKECOLORS_LOG_FORMAT"
)

type loggerKey struct{}

// LevelVar is shared by the loggers of this package.
var LevelVar = &slog.LevelVar{}

// DefaultLogger writes pretty records to stderr. Stdout is reserved for rendered output.
var DefaultLogger = slog.New(NewPrettyHandler(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithAutoColour(),
	WithDestinationWriter(os.Stderr),
))

func init() {
	LevelVar.Set(logLevelFromEnv())
}

// NewJSONLogger returns a JSON logger writing to w at the shared level.
func NewJSONLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: LevelVar,
	}))
}

// FromEnv returns the JSON logger when LogFormatEnvVar is "json", else DefaultLogger.
func FromEnv() *slog.Logger {
	if strings.EqualFold(os.Getenv(LogFormatEnvVar), "json") {
		return NewJSONLogger(os.Stderr)
	}

	return DefaultLogger
}

// New returns a context carrying logger, or DefaultLogger when logger is nil.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// ParseLevel maps DEBUG, INFO, WARN (or WARNING) and ERROR, in any case, to a level.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	}

	return slog.LevelWarn, false
}

// exeEnvVar derives "<EXE>_LOG_LEVEL" from the executable name,
// with characters not allowed in variable names replaced by '_'.
func exeEnvVar() string {
	exe, _ := os.Executable()
	exe = filepath.Base(exe)
	exe = strings.TrimSuffix(exe, ".exe")

	exe = strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToUpper(r)
		}

		return '_'
	}, exe)

	return exe + "_LOG_LEVEL"
}

// logLevelFromEnv reads the executable's variable first, then LogLevelEnvVar.
// Unset or unknown values mean WARN.
func logLevelFromEnv() slog.Level {
	for _, name := range []string{exeEnvVar(), LogLevelEnvVar} {
		if lvl, ok := ParseLevel(os.Getenv(name)); ok {
			return lvl
		}
	}

	return slog.LevelWarn
}
