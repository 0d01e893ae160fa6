package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a settings value to a zerolog level. Unknown values give
// info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LogFilePath returns the log file for a run started at now, or "" when no
// logs directory is configured.
func LogFilePath(logsDir string, now time.Time) string {
	if logsDir == "" {
		return ""
	}
	return filepath.Join(logsDir, fmt.Sprintf("rpp2object_%s.log", now.Format("20060102_150405")))
}

// New builds a logger writing console format to console and, when file is
// set, uncoloured console format to file as well.
func New(level zerolog.Level, console io.Writer, file io.Writer) zerolog.Logger {
	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
		},
	}
	if file != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        file,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Setup creates the logger for the CLI: stderr plus an optional file under
// logsDir. The returned close function must be called on exit.
func Setup(levelName, logsDir string) (zerolog.Logger, func() error, error) {
	path := LogFilePath(logsDir, time.Now())
	if path == "" {
		return New(ParseLevel(levelName), os.Stderr, nil), func() error { return nil }, nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create logs dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	return New(ParseLevel(levelName), os.Stderr, f), f.Close, nil
}
