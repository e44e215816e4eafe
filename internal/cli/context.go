// Package cli provides the session layer of the simulator: it assembles the
// configuration, logger, terminal UI and shell for one session and drives the
// shell either from an interactive prompt or from a script.
package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/zoro11031/linux-sim/internal/config"
	"github.com/zoro11031/linux-sim/internal/logging"
	"github.com/zoro11031/linux-sim/internal/shell"
	"github.com/zoro11031/linux-sim/internal/ui"
	"github.com/zoro11031/linux-sim/internal/vfs"
)

// Options controls how a session is built. Empty fields fall back to the
// configuration file.
type Options struct {
	ConfigPath string
	// LogFile and LogLevel override LOG_FILE and LOG_LEVEL for this session
	LogFile  string
	LogLevel string
	// NonInteractive disables prompts (scripts and exec)
	NonInteractive bool
	// Fs defaults to the OS filesystem
	Fs afero.Fs
	// Output defaults to stdout
	Output io.Writer
}

// SessionContext holds all dependencies of one simulator session
type SessionContext struct {
	Config *config.Config
	UI     *ui.UI
	Log    *logrus.Logger
	Shell  *shell.Shell

	logCloser io.Closer
}

// NewSessionContext loads the configuration and builds a shell over a freshly
// seeded namespace. Close must be called when the session ends.
func NewSessionContext(opts Options) (*SessionContext, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	// Initialize configuration
	cfg := config.NewWithFs(fs, opts.ConfigPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logging
	logOpts := logging.OptionsFromConfig(cfg)
	if opts.LogFile != "" {
		logOpts.File = opts.LogFile
	}
	if opts.LogLevel != "" {
		logOpts.Level = opts.LogLevel
	}
	logger, closer, err := logging.New(fs, logOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	// Initialize UI
	uiInstance := ui.New()
	if opts.Output != nil {
		uiInstance = ui.NewWithWriter(opts.Output)
	}
	uiInstance.SetNonInteractive(opts.NonInteractive)

	sh := shell.New(vfs.NewDefault(), uiInstance, logger, ShellOptions(cfg))

	logger.WithFields(logrus.Fields{
		"config":          cfg.FilePath(),
		"non_interactive": opts.NonInteractive,
	}).Info("session started")

	return &SessionContext{
		Config:    cfg,
		UI:        uiInstance,
		Log:       logger,
		Shell:     sh,
		logCloser: closer,
	}, nil
}

// ShellOptions maps the SHELL_* and HISTORY_LIMIT keys onto shell options
func ShellOptions(cfg *config.Config) shell.Options {
	return shell.Options{
		User:         cfg.GetOrDefault(config.KeyShellUser, "user"),
		Hostname:     cfg.GetOrDefault(config.KeyShellHostname, "ubuntu_Server"),
		HistoryLimit: cfg.GetInt(config.KeyHistoryLimit, 500),
		Explain:      cfg.GetBool(config.KeyShellExplain, false),
	}
}

// Close ends the session and releases the log file
func (c *SessionContext) Close() error {
	c.Log.WithField("commands", len(c.Shell.History())).Info("session ended")
	return c.logCloser.Close()
}
