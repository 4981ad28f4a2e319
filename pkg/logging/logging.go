// Package logging routes the standard logger to a rotating file under the
// user config directory, mirrored to stderr.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/phydon/sp/pkg/config"
)

// FileName is the log file's name inside the sp config directory.
const FileName = "sp.log"

// Dir returns the sp config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("find config directory: %w", err)
	}
	return filepath.Join(base, "sp"), nil
}

// Path returns the log file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Setup creates dir if needed and routes the standard logger to the
// rotating log file there, duplicated to stderr.
func Setup(dir string, cfg config.LogConfig) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	logger := &lumberjack.Logger{
		Filename:   Path(dir),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	log.SetOutput(io.MultiWriter(os.Stderr, logger))
	return nil
}

// Read returns the log file's content. found is false when no log file
// exists yet.
func Read(dir string) (content string, found bool, err error) {
	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read log file: %w", err)
	}
	return string(data), true, nil
}
