// Package logging configures the structured logger used by shell sessions.
//
// Logging is off unless a log file is configured: the simulator's terminal
// belongs to the learner, so diagnostics never go to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/zoro11031/linux-sim/internal/config"
)

// Options selects where and how log entries are written
type Options struct {
	File   string
	Level  string
	Format string
}

// OptionsFromConfig reads the LOG_* keys
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		File:   cfg.GetOrDefault(config.KeyLogFile, ""),
		Level:  cfg.GetOrDefault(config.KeyLogLevel, "info"),
		Format: cfg.GetOrDefault(config.KeyLogFormat, "text"),
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger for opts. The returned closer releases the log file and
// must be called when the session ends.
func New(fs afero.Fs, opts Options) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	if opts.File == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	if err := fs.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := fs.OpenFile(opts.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)

	if opts.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger, f, nil
}
