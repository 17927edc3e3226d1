package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvLogLevel overrides the configured level when set.
const EnvLogLevel = "PL_LOG_LEVEL"

const (
	maxSizeMB  = 20
	maxBackups = 3
	maxAgeDays = 14
)

// Init installs the default slog logger. Records go to a rotating file at
// path, or are discarded when path is empty. The terminal is owned by the
// TUI, so nothing is written to stderr. The returned func closes the file.
func Init(level, path string) (func() error, error) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		level = v
	}

	writer, closeFn, err := resolveWriter(path)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: ParseLevel(level)})
	slog.SetDefault(slog.New(handler).With(slog.Int("pid", os.Getpid())))

	return closeFn, nil
}

func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func resolveWriter(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
	}

	rot := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	return rot, rot.Close, nil
}
