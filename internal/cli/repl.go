package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/zoro11031/linux-sim/internal/shell"
)

// LineReader reads one line of user input after showing prompt
type LineReader interface {
	PromptLine(prompt string) (string, error)
}

// REPL provides the interactive terminal session
type REPL struct {
	ctx    *SessionContext
	reader LineReader
}

// NewREPL creates a REPL reading from the session's terminal UI
func NewREPL(ctx *SessionContext) *REPL {
	return NewREPLWithReader(ctx, ctx.UI)
}

// NewREPLWithReader creates a REPL with a custom input source (useful for testing)
func NewREPLWithReader(ctx *SessionContext, reader LineReader) *REPL {
	return &REPL{ctx: ctx, reader: reader}
}

// Run shows the welcome banner and processes input until exit or end of input
func (r *REPL) Run() error {
	r.ctx.UI.Clear()
	r.ctx.Shell.Welcome()

	for {
		line, err := r.reader.PromptLine(r.ctx.Shell.Prompt())
		if err != nil {
			switch {
			case errors.Is(err, terminal.InterruptErr):
				// Ctrl+C leaves the editor without saving and is ignored elsewhere
				if r.ctx.Shell.Mode() != shell.ModeEditor {
					continue
				}
				line = "^C"
			case errors.Is(err, io.EOF):
				r.ctx.UI.Print("")
				return nil
			default:
				return fmt.Errorf("failed to read input: %w", err)
			}
		}

		if err := r.ctx.Shell.Execute(line); err != nil {
			if errors.Is(err, shell.ErrExit) {
				return nil
			}
			return err
		}
	}
}
