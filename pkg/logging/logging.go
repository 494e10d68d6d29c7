// Package logging is the process-wide leveled message sink the library
// reports anomalies through. It owns no formatting or destination policy
// beyond a console writer default; callers may raise or lower the level at
// any time, and Off silences the library entirely.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level controls which messages reach the sink.
type Level int

const (
	OffLevel Level = iota
	AllLevels
	DebugLevel
	InfoLevel
	WarningLevel
	ErrorLevel
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "cerializer").Logger()
}

// SetLevel changes the process-wide log level.
func SetLevel(level Level) {
	switch level {
	case OffLevel:
		logger = logger.Level(zerolog.Disabled)
	case AllLevels, DebugLevel:
		logger = logger.Level(zerolog.DebugLevel)
	case InfoLevel:
		logger = logger.Level(zerolog.InfoLevel)
	case WarningLevel:
		logger = logger.Level(zerolog.WarnLevel)
	case ErrorLevel:
		logger = logger.Level(zerolog.ErrorLevel)
	}
}

// SetOutput redirects the sink, keeping the current level.
func SetOutput(w io.Writer) {
	level := logger.GetLevel()
	logger = newLogger(w).Level(level)
}

// Debug logs a debug message.
func Debug(message string) {
	logger.Debug().Msg(message)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	logger.Debug().Msg(fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func Info(message string) {
	logger.Info().Msg(message)
}

// Infof logs a formatted informational message.
func Infof(format string, args ...interface{}) {
	logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func Warn(message string) {
	logger.Warn().Msg(message)
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...interface{}) {
	logger.Warn().Msg(fmt.Sprintf(format, args...))
}

// Error logs an error message.
func Error(message string) {
	logger.Error().Msg(message)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	logger.Error().Msg(fmt.Sprintf(format, args...))
}

// FunctionDebug logs a debug message tagged with its originating function.
func FunctionDebug(function, message string) {
	logger.Debug().Str("function", function).Msg(message)
}

// FunctionWarn logs a warning tagged with its originating function.
func FunctionWarn(function, message string) {
	logger.Warn().Str("function", function).Msg(message)
}

// FunctionError logs an error tagged with its originating function.
func FunctionError(function, message string) {
	logger.Error().Str("function", function).Msg(message)
}
