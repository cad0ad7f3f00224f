// Copyright 2025 Certen Protocol
//
// Package logging wraps log/slog with the structured-field conventions
// used across this module: a Logger carries a Config (level, format,
// output target) and exposes WithX helpers that attach fields without
// mutating the parent logger.

package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"
)

// Logger wraps slog.Logger with the field-attachment helpers this module
// uses for signer/verifier operations.
type Logger struct {
	*slog.Logger
	config *Config
}

// Config controls a Logger's output target, format, and verbosity.
type Config struct {
	Level      slog.Level `json:"level"`
	Format     string     `json:"format"` // "json" or "text"
	Output     string     `json:"output"` // "stdout", "stderr", or a file path
	AddSource  bool       `json:"add_source"`
	TimeFormat string     `json:"time_format"`
}

// Field is a single structured log attribute.
type Field struct {
	Key   string
	Value interface{}
}

// DefaultConfig returns text-formatted, info-level logging to stdout.
func DefaultConfig() *Config {
	return &Config{
		Level:      slog.LevelInfo,
		Format:     "text",
		Output:     "stdout",
		AddSource:  false,
		TimeFormat: time.RFC3339,
	}
}

// NewLogger builds a Logger from config, opening config.Output if it names
// a file path rather than stdout/stderr.
func NewLogger(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var output io.Writer
	switch config.Output {
	case "stdout", "":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		output = file
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     config.Level,
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(output, handlerOpts)
	}

	return &Logger{Logger: slog.New(handler), config: config}, nil
}

// WithFields returns a derived logger carrying the given fields.
func (l *Logger) WithFields(fields ...Field) *Logger {
	if len(fields) == 0 {
		return l
	}
	args := make([]any, len(fields)*2)
	for i, field := range fields {
		args[i*2] = field.Key
		args[i*2+1] = field.Value
	}
	return &Logger{Logger: l.Logger.With(args...), config: l.config}
}

// WithComponent tags the logger with a component name, e.g. "signer" or
// "verifier".
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithFields(Field{Key: "component", Value: component})
}

// WithError attaches an error's message to the logger.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.WithFields(Field{Key: "error", Value: err.Error()})
}

func (l *Logger) Debug(msg string, fields ...Field) { l.log(slog.LevelDebug, msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.log(slog.LevelInfo, msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.log(slog.LevelWarn, msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.log(slog.LevelError, msg, fields...) }

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(msg string, fields ...Field) {
	l.log(slog.LevelError, msg, fields...)
	os.Exit(1)
}

func (l *Logger) log(level slog.Level, msg string, fields ...Field) {
	if !l.Logger.Enabled(context.Background(), level) {
		return
	}

	attrs := make([]slog.Attr, len(fields))
	for i, field := range fields {
		attrs[i] = slog.Any(field.Key, field.Value)
	}

	if l.config.AddSource {
		_, file, line, ok := runtime.Caller(2)
		if ok {
			attrs = append(attrs, slog.Group("source",
				slog.String("file", file),
				slog.Int("line", line),
			))
		}
	}

	l.Logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// LogSignOperation logs a signer.Sign call's outcome.
func (l *Logger) LogSignOperation(leafIndex int, success bool, duration time.Duration, fields ...Field) {
	allFields := append([]Field{
		{Key: "leaf_index", Value: leafIndex},
		{Key: "success", Value: success},
		{Key: "duration_us", Value: duration.Microseconds()},
		{Key: "type", Value: "sign_operation"},
	}, fields...)

	level := slog.LevelInfo
	if !success {
		level = slog.LevelError
	}
	l.log(level, "sign operation", allFields...)
}

// LogVerifyOperation logs a verifier.Verify call's outcome, including which
// error kind rejected it when applicable.
func (l *Logger) LogVerifyOperation(success bool, failureKind string, duration time.Duration, fields ...Field) {
	allFields := append([]Field{
		{Key: "success", Value: success},
		{Key: "duration_us", Value: duration.Microseconds()},
		{Key: "type", Value: "verify_operation"},
	}, fields...)
	if !success {
		allFields = append(allFields, Field{Key: "failure_kind", Value: failureKind})
	}

	level := slog.LevelInfo
	if !success {
		level = slog.LevelWarn
	}
	l.log(level, "verify operation", allFields...)
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}

var globalLogger *Logger

// SetGlobalLogger installs the process-wide default logger.
func SetGlobalLogger(logger *Logger) { globalLogger = logger }

// GetGlobalLogger returns the process-wide default logger, lazily
// creating one from DefaultConfig if none has been set.
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		logger, _ := NewLogger(DefaultConfig())
		globalLogger = logger
	}
	return globalLogger
}

func Debug(msg string, fields ...Field) { GetGlobalLogger().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { GetGlobalLogger().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { GetGlobalLogger().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { GetGlobalLogger().Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { GetGlobalLogger().Fatal(msg, fields...) }
