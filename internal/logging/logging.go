package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// DefaultPath returns ~/.funil/logs/funil.log
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".funil", "logs", "funil.log"), nil
}

// Init initializes the logging system, writing logs to ~/.funil/logs/funil.log.
// The terminal belongs to the TUI, so nothing is written to stderr.
func Init() (io.Closer, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return InitFile(path, slog.LevelDebug)
}

// InitFile points the default slog logger at a rotating file.
// The returned closer releases the file.
func InitFile(path string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	// Text handler (human readable)
	handler := slog.NewTextHandler(rotator, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Standard log package output goes to the same file
	log.SetOutput(rotator)
	log.SetFlags(log.LstdFlags)

	return rotator, nil
}
