// ABOUTME: File-backed slog logger for use while the TUI owns the terminal
// ABOUTME: Avoids interfering with terminal display while capturing errors

package debuglog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/logger"
)

// FileName is the log file created inside the config directory
const FileName = "debug.log"

// Open returns a logger appending to <configDir>/debug.log. With an empty
// configDir it returns a logger that discards everything.
func Open(configDir string) (*slog.Logger, io.Closer, error) {
	level := logger.ParseLevel(os.Getenv(logger.EnvLevel), slog.LevelInfo)
	format := os.Getenv(logger.EnvFormat)

	if configDir == "" {
		return logger.New(io.Discard, level, format), nopCloser{}, nil
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(filepath.Join(configDir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, err
	}
	return logger.New(f, level, format), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
