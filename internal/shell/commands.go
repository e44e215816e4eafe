package shell

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/zoro11031/linux-sim/internal/vfs"
)

// Command is one entry of the command table. Run returns a short explanation
// of what happened, shown when explain mode is on.
type Command struct {
	Name    string
	Usage   string
	Summary string
	Run     func(s *Shell, args []string) (string, error)
}

func (c *Command) usageError() error {
	return fmt.Errorf("usage: %s", c.Usage)
}

// builtinCommands returns the command table keyed by name. vim shares vi's handler.
func builtinCommands() map[string]*Command {
	table := []*Command{
		{Name: "ls", Usage: "ls [path]", Summary: "list directory contents", Run: runLs},
		{Name: "cd", Usage: "cd <directory>", Summary: "change the current directory", Run: runCd},
		{Name: "pwd", Usage: "pwd", Summary: "print the current directory", Run: runPwd},
		{Name: "mkdir", Usage: "mkdir <directory>", Summary: "create a directory", Run: runMkdir},
		{Name: "rm", Usage: "rm <path>", Summary: "remove a file or directory", Run: runRm},
		{Name: "cp", Usage: "cp <source> <target>", Summary: "copy files (not supported)", Run: runCp},
		{Name: "mv", Usage: "mv <source> <target>", Summary: "move files (not supported)", Run: runMv},
		{Name: "cat", Usage: "cat <file>", Summary: "print file contents", Run: runCat},
		{Name: "touch", Usage: "touch <file>", Summary: "create an empty file", Run: runTouch},
		{Name: "clear", Usage: "clear", Summary: "clear the screen", Run: runClear},
		{Name: "exit", Usage: "exit", Summary: "leave the simulator", Run: runExit},
		{Name: "echo", Usage: "echo [text...]", Summary: "print text", Run: runEcho},
		{Name: "whoami", Usage: "whoami", Summary: "print the current user", Run: runWhoami},
		{Name: "date", Usage: "date", Summary: "print the current date and time", Run: runDate},
		{Name: "help", Usage: "help", Summary: "show this help", Run: runHelp},
		{Name: "history", Usage: "history", Summary: "show command history", Run: runHistory},
		{Name: "vi", Usage: "vi <file>", Summary: "text editor (:wq saves, :q! quits)", Run: runVi},
		{Name: "vim", Usage: "vim <file>", Summary: "text editor (same as vi)", Run: runVi},
		{Name: "nano", Usage: "nano <file>", Summary: "text editor (^X saves, ^C cancels)", Run: runNano},
		{Name: "top", Usage: "top", Summary: "show running processes (q quits)", Run: runTop},
	}
	return lo.KeyBy(table, func(c *Command) string { return c.Name })
}

// CommandNames returns the registered command names in sorted order
func (s *Shell) CommandNames() []string {
	names := lo.Keys(s.commands)
	slices.Sort(names)
	return names
}

// suggest finds the registered command closest to name, if it is a plausible typo.
func (s *Shell) suggest(name string) (string, bool) {
	names := s.CommandNames()
	closest := lo.MinBy(names, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return closest, closest != "" && levenshtein.Distance(name, closest) <= 2
}

func runLs(s *Shell, args []string) (string, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	names, err := s.ns.List(path)
	if err != nil {
		return "", err
	}
	s.ui.Lines(names)
	return "Listing directory contents: " + lo.Ternary(path == "", s.ns.CurrentPath(), path), nil
}

func runCd(s *Shell, args []string) (string, error) {
	if len(args) == 0 {
		return "", s.commands["cd"].usageError()
	}
	current, err := s.ns.ChangeDirectory(args[0])
	if err != nil {
		return "", err
	}
	s.ui.Printf("Current directory: %s", current)
	return "Changing directory to: " + args[0], nil
}

func runPwd(s *Shell, _ []string) (string, error) {
	current := s.ns.CurrentPath()
	s.ui.Print(current)
	return "Current path: " + current, nil
}

func runMkdir(s *Shell, args []string) (string, error) {
	if len(args) == 0 {
		return "", s.commands["mkdir"].usageError()
	}
	if err := s.ns.CreateDirectory(args[0]); err != nil {
		return "", err
	}
	s.ui.Successf("Directory '%s' created", args[0])
	return "Created new directory: " + args[0], nil
}

func runRm(s *Shell, args []string) (string, error) {
	if len(args) == 0 {
		return "", s.commands["rm"].usageError()
	}
	if err := s.ns.Delete(args[0]); err != nil {
		return "", err
	}
	s.ui.Successf("'%s' removed", args[0])
	return "Removed file/directory: " + args[0], nil
}

func runCp(s *Shell, args []string) (string, error) {
	if len(args) != 2 {
		return "", s.commands["cp"].usageError()
	}
	s.ui.Warning("Copying is not supported in the virtual filesystem")
	return fmt.Sprintf("Simulated copy: %s -> %s", args[0], args[1]), nil
}

func runMv(s *Shell, args []string) (string, error) {
	if len(args) != 2 {
		return "", s.commands["mv"].usageError()
	}
	s.ui.Warning("Moving is not supported in the virtual filesystem")
	return fmt.Sprintf("Simulated move: %s -> %s", args[0], args[1]), nil
}

func runCat(s *Shell, args []string) (string, error) {
	if len(args) == 0 {
		return "", s.commands["cat"].usageError()
	}
	content, err := s.ns.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	s.ui.Print(content)
	return "Showing file contents: " + args[0], nil
}

func runTouch(s *Shell, args []string) (string, error) {
	if len(args) == 0 {
		return "", s.commands["touch"].usageError()
	}
	err := s.ns.CreateFile(args[0])
	if errors.Is(err, vfs.ErrNameConflict) {
		// an existing entry is left exactly as it was
		s.ui.Warningf("touch: %s", describe(err))
		return "", nil
	}
	if err != nil {
		return "", err
	}
	s.ui.Successf("File '%s' created", args[0])
	return "Created new file: " + args[0], nil
}

func runClear(s *Shell, _ []string) (string, error) {
	s.ui.Clear()
	return "Screen cleared", nil
}

func runExit(s *Shell, _ []string) (string, error) {
	s.ui.Info("Exiting the simulator")
	return "", ErrExit
}

func runEcho(s *Shell, args []string) (string, error) {
	text := strings.Join(args, " ")
	s.ui.Print(text)
	if text == "" {
		return "", nil
	}
	return "Printing text: " + text, nil
}

func runWhoami(s *Shell, _ []string) (string, error) {
	s.ui.Print(s.opts.User)
	return "Showing current user", nil
}

func runDate(s *Shell, _ []string) (string, error) {
	s.ui.Print(s.opts.Clock().Format("2006-01-02 15:04:05"))
	return "Showing current date and time", nil
}

func runHelp(s *Shell, _ []string) (string, error) {
	s.ui.Print("Available commands:")
	for _, name := range s.CommandNames() {
		cmd := s.commands[name]
		s.ui.Printf("  %-22s %s", cmd.Usage, cmd.Summary)
	}
	return "Showing help", nil
}

// runHistory lists every recorded line, including the history command itself.
func runHistory(s *Shell, _ []string) (string, error) {
	for i, line := range s.history {
		s.ui.Printf("%d  %s", i+1, line)
	}
	return "Showing command history", nil
}
