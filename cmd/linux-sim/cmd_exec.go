package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zoro11031/linux-sim/internal/cli"
)

var execFile string

var execCmd = &cobra.Command{
	Use:   "exec [command...]",
	Short: "Run simulator commands without the interactive prompt",
	Long: `Run simulator commands non-interactively.

Each argument is executed as one command line, in order, against a fresh
file tree. Alternatively --file reads one command per line from a script
(use - for standard input). In scripts, blank lines and lines starting
with # are skipped, and execution stops at exit.`,
	Example: `  linux-sim exec "cd /home/user" ls "cat hello.txt"
  linux-sim exec --file tour.txt
  echo pwd | linux-sim exec -f -`,
	RunE: runExec,
}

func init() {
	execCmd.Flags().StringVarP(&execFile, "file", "f", "", "Read commands from a script file (- for stdin)")

	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	if execFile == "" && len(args) == 0 {
		return errors.New("nothing to run: pass commands as arguments or use --file")
	}
	if execFile != "" && len(args) > 0 {
		return errors.New("command arguments cannot be combined with --file")
	}

	ctx, err := newSession(cmd, true)
	if err != nil {
		return err
	}
	defer ctx.Close()

	if execFile == "" {
		return cli.RunLines(ctx, args)
	}

	var script io.Reader = cmd.InOrStdin()
	if execFile != "-" {
		f, err := appFs.Open(execFile)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		script = f
	}

	ctx.Log.WithField("script", execFile).Info("running script")
	return cli.RunScript(ctx, script)
}
