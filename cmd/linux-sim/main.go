package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/zoro11031/linux-sim/internal/cli"
	"github.com/zoro11031/linux-sim/internal/common"
	"github.com/zoro11031/linux-sim/pkg/version"
)

var (
	// Persistent flags shared by every command
	configPath string
	logFile    string
	logLevel   string

	// appFs backs the config file, log file and scripts
	appFs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "linux-sim",
	Short: "Linux command line simulator",
	Long: `A safe playground for learning Linux shell commands.

The simulator runs a shell over an in-memory file tree, so nothing you do
touches the real system. It supports:
- Navigation: ls, cd, pwd
- File management: mkdir, touch, rm, cat
- Editing with vi/vim (:wq, :q!) and nano (^X, ^C)
- A simulated top process viewer
- history, echo, whoami, date, clear and help

Run without arguments to start an interactive session.`,
	SilenceUsage:      true, // We handle errors manually, but silence usage on error
	SilenceErrors:     true, // We format errors ourselves for consistent output
	PersistentPreRunE: validateFlags,
	RunE:              runInteractiveShell,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	},
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session",
	Long:  `Start an interactive simulator session (the default when no command is given).`,
	RunE:  runInteractiveShell,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.linux-sim.conf)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write session logs to this file (overrides LOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(shellCmd)
}

func validateFlags(cmd *cobra.Command, args []string) error {
	if logLevel != "" {
		if err := common.ValidateLogLevel(logLevel); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	return nil
}

// newSession builds a session from the persistent flags, printing to cmd's output
func newSession(cmd *cobra.Command, nonInteractive bool) (*cli.SessionContext, error) {
	ctx, err := cli.NewSessionContext(cli.Options{
		ConfigPath:     configPath,
		LogFile:        logFile,
		LogLevel:       logLevel,
		NonInteractive: nonInteractive,
		Fs:             appFs,
		Output:         cmd.OutOrStdout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	return ctx, nil
}

func runInteractiveShell(cmd *cobra.Command, args []string) error {
	ctx, err := newSession(cmd, false)
	if err != nil {
		return err
	}
	defer ctx.Close()

	return cli.NewREPL(ctx).Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
