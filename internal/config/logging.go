package config

import (
	"log/slog"

	"git.home.luguber.info/inful/classydoc/internal/foundation/errors"
	"git.home.luguber.info/inful/classydoc/internal/foundation/normalization"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer(map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}, LogLevelInfo)

// NormalizeLogLevel maps raw onto a LogLevel, falling back to info.
func NormalizeLogLevel(raw string) LogLevel {
	return logLevelNormalizer.Normalize(raw)
}

// SlogLevel maps the level onto slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer(map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}, LogFormatText)

// NormalizeLogFormat maps raw onto a LogFormat, falling back to text.
func NormalizeLogFormat(raw string) LogFormat {
	return logFormatNormalizer.Normalize(raw)
}

// checkLogging rejects spellings that would otherwise silently fall back.
func checkLogging(l LoggingConfig) error {
	if raw := string(l.Level); raw != "" {
		if _, ok := logLevelNormalizer.Lookup(raw); !ok {
			return errors.ValidationError("unknown log level").
				WithContext("field", "logging.level").WithContext("valid", logLevelNormalizer.Keys()).Build()
		}
	}
	if raw := string(l.Format); raw != "" {
		if _, ok := logFormatNormalizer.Lookup(raw); !ok {
			return errors.ValidationError("unknown log format").
				WithContext("field", "logging.format").WithContext("valid", logFormatNormalizer.Keys()).Build()
		}
	}
	return nil
}
