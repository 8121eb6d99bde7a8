package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "charm.land/log/v2"
	"golang.org/x/term"
)

// Level represents a log severity level.
type Level string

// Supported log levels.
const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatPretty outputs human-readable, styled logs for terminals.
	FormatPretty Format = "pretty"
	// FormatAuto selects [FormatPretty] when the writer is a terminal and
	// [FormatLogfmt] otherwise.
	FormatAuto Format = "auto"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// NewHandlerFromStrings creates a [slog.Handler] from level and format
// strings.
func NewHandlerFromStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	logFmt, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, logFmt), nil
}

// NewHandler creates a [slog.Handler] with the specified level and format.
func NewHandler(w io.Writer, level Level, format Format) slog.Handler {
	if format == FormatAuto {
		format = DetectFormat(w)
	}

	slogLvl := level.SlogLevel()

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slogLvl,
		})

	case FormatLogfmt:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slogLvl,
		})

	case FormatPretty:
		return charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			Level:           charmlog.Level(slogLvl),
		})
	}

	return nil
}

// DetectFormat returns [FormatPretty] when w is a terminal and
// [FormatLogfmt] otherwise.
func DetectFormat(w io.Writer) Format {
	f, ok := w.(*os.File)
	if ok && term.IsTerminal(int(f.Fd())) {
		return FormatPretty
	}

	return FormatLogfmt
}

// ParseLevel parses a log level string.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return "", ErrUnknownLogLevel
}

// ParseFormat parses a log format string.
func ParseFormat(format string) (Format, error) {
	logFmt := Format(strings.ToLower(format))

	switch logFmt {
	case FormatJSON, FormatLogfmt, FormatPretty, FormatAuto:
		return logFmt, nil
	}

	return "", ErrUnknownLogFormat
}

// SlogLevel converts a [Level] to the corresponding [slog.Level]. Unknown
// levels map to [slog.LevelInfo].
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// GetAllLevelStrings returns all supported level strings.
func GetAllLevelStrings() []string {
	return []string{
		string(LevelError),
		string(LevelWarn),
		string(LevelInfo),
		string(LevelDebug),
	}
}

// GetAllFormatStrings returns all supported format strings.
func GetAllFormatStrings() []string {
	return []string{
		string(FormatAuto),
		string(FormatJSON),
		string(FormatLogfmt),
		string(FormatPretty),
	}
}
