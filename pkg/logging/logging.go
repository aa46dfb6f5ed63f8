// Package logging builds the diagnostic logger. The TUI owns the terminal,
// so logs go to a file under the config directory rather than stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New opens a file-backed zap logger at dir/reunion.log. When dir is empty
// the logger is a no-op; the app never fails because diagnostics are
// unavailable.
func New(dir string, verbose bool) (*zap.Logger, error) {
	if dir == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zap.NewNop(), fmt.Errorf("logging: create %s: %w", dir, err)
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{filepath.Join(dir, "reunion.log")}
	config.ErrorOutputPaths = config.OutputPaths
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop(), fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
