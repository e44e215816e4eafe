package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zoro11031/linux-sim/internal/shell"
)

// RunScript feeds every line of r to the session's shell, echoing each one
// after its prompt. In command mode blank lines and lines starting with # are
// skipped; inside the editor every line is kept as typed. The script stops at
// exit.
func RunScript(ctx *SessionContext, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if ctx.Shell.Mode() == shell.ModeCommand {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
		}

		ctx.UI.Echo(ctx.Shell.Prompt(), line)
		if err := ctx.Shell.Execute(line); err != nil {
			if errors.Is(err, shell.ErrExit) {
				return nil
			}
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	if ctx.Shell.Mode() == shell.ModeEditor {
		ctx.UI.Warning("Script ended inside the editor; unsaved changes were discarded")
	}
	return nil
}

// RunLines runs each element of lines as one script line
func RunLines(ctx *SessionContext, lines []string) error {
	return RunScript(ctx, strings.NewReader(strings.Join(lines, "\n")))
}
