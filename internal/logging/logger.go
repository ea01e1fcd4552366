// Package logging provides the leveled console logger used across the CLI,
// backed by zerolog with an optional plain-text file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/backmassage/skylapse/internal/config"
	"github.com/backmassage/skylapse/internal/term"
)

// Logger wraps a zerolog.Logger with the printf-style leveled API the rest
// of the code uses. Error output additionally goes to stderr; everything
// else goes to stdout and, when configured, the log file.
type Logger struct {
	out  zerolog.Logger
	errs zerolog.Logger
	file *os.File
}

const timeFormat = "2006-01-02 15:04:05"

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	l := &Logger{}

	outWriters := []io.Writer{consoleWriter(os.Stdout)}
	errWriters := []io.Writer{consoleWriter(os.Stderr)}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		fileWriter := zerolog.ConsoleWriter{Out: f, TimeFormat: timeFormat, NoColor: true}
		outWriters = append(outWriters, fileWriter)
		errWriters = append(errWriters, fileWriter)
	}

	l.out = zerolog.New(zerolog.MultiLevelWriter(outWriters...)).
		Level(level).With().Timestamp().Logger()
	l.errs = zerolog.New(zerolog.MultiLevelWriter(errWriters...)).
		Level(level).With().Timestamp().Logger()
	return l, nil
}

func consoleWriter(f *os.File) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: timeFormat,
		NoColor:    !term.Enabled(),
	}
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// WithRun returns a child logger tagged with the run ID.
func (l *Logger) WithRun(runID string) *Logger {
	child := *l
	child.out = l.out.With().Str("run", runID).Logger()
	child.errs = l.errs.With().Str("run", runID).Logger()
	return &child
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.out.Info().Msgf(format, args...)
}

// Success logs at INFO level with an ok marker, for end-of-step results.
func (l *Logger) Success(format string, args ...interface{}) {
	l.out.Info().Bool("ok", true).Msgf(format, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.out.Warn().Msgf(format, args...)
}

// Error logs at ERROR level to stderr (and the file sink).
func (l *Logger) Error(format string, args ...interface{}) {
	l.errs.Error().Msgf(format, args...)
}

// Debug logs at DEBUG level; suppressed unless the logger was built with
// Verbose set.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.out.Debug().Msgf(format, args...)
}
