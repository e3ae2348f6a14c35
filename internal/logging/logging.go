// Package logging provides the opt-in debug log. The terminal belongs to the
// UI, so log output never goes to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// DebugEnv enables the debug log when set to a non-empty value.
const DebugEnv = "FEE_DEBUG"

// New returns a logger writing text records to out.
func New(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	return New(io.Discard, logrus.PanicLevel)
}

// Open returns the process logger. Unless DebugEnv is set it discards
// records; otherwise it appends debug records to path. The returned close
// function is always non-nil.
func Open(getenv func(string) string, path string) (*logrus.Logger, func() error, error) {
	noop := func() error { return nil }
	if getenv(DebugEnv) == "" || path == "" {
		return Discard(), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, noop, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	return New(f, logrus.DebugLevel), f.Close, nil
}
