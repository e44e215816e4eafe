// Package shell interprets simulator command lines against a virtual
// namespace. It owns the command table, the command history and the two
// full-screen modes borrowed from real tools: a line editor (vi/nano) and a
// process viewer (top).
package shell

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/sirupsen/logrus"
	"github.com/zoro11031/linux-sim/internal/ui"
	"github.com/zoro11031/linux-sim/internal/vfs"
)

// ErrExit is returned by Execute when the user runs exit
var ErrExit = errors.New("exit")

// Mode selects how Execute interprets input lines
type Mode int

const (
	ModeCommand Mode = iota
	ModeEditor
	ModeTop
)

// Options configures a Shell. Zero values fall back to the stock simulator settings.
type Options struct {
	User     string
	Hostname string
	// HistoryLimit bounds the command history; 0 keeps every command
	HistoryLimit int
	// Explain prints a short description after each successful command
	Explain bool
	Clock   func() time.Time
	Rand    *rand.Rand
}

// Shell dispatches command lines to handlers. It is driven by one caller at a time.
type Shell struct {
	ns       *vfs.Namespace
	ui       *ui.UI
	log      logrus.FieldLogger
	opts     Options
	commands map[string]*Command
	history  []string
	mode     Mode
	editor   *editorSession
}

// New creates a Shell operating on ns and printing through out
func New(ns *vfs.Namespace, out *ui.UI, log logrus.FieldLogger, opts Options) *Shell {
	if opts.User == "" {
		opts.User = "user"
	}
	if opts.Hostname == "" {
		opts.Hostname = "ubuntu_Server"
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	return &Shell{
		ns:       ns,
		ui:       out,
		log:      log,
		opts:     opts,
		commands: builtinCommands(),
	}
}

// Mode reports the current input mode
func (s *Shell) Mode() Mode {
	return s.mode
}

// History returns a copy of the recorded command lines, oldest first
func (s *Shell) History() []string {
	return append([]string(nil), s.history...)
}

// Namespace exposes the virtual tree the shell operates on
func (s *Shell) Namespace() *vfs.Namespace {
	return s.ns
}

// Prompt returns the text to show before reading the next line
func (s *Shell) Prompt() string {
	switch s.mode {
	case ModeEditor:
		return "~ "
	case ModeTop:
		return "top> "
	default:
		return fmt.Sprintf("%s@%s:%s$ ", s.opts.User, s.opts.Hostname, s.ns.CurrentPath())
	}
}

// Welcome prints the session banner
func (s *Shell) Welcome() {
	s.ui.Header("Linux Command Simulator")
	s.ui.Info("Welcome to the Linux command learning simulator!")
	s.ui.Infof("Available commands: %s", strings.Join(s.CommandNames(), ", "))
	s.ui.Infof("Current directory: %s", s.ns.CurrentPath())
	s.ui.Print("")
}

// Execute processes one input line. Command failures are reported to the
// user and do not stop the session; only exit returns an error (ErrExit).
func (s *Shell) Execute(line string) error {
	switch s.mode {
	case ModeEditor:
		s.editorInput(line)
		return nil
	case ModeTop:
		s.topInput(line)
		return nil
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	s.recordHistory(line)

	words, err := shellquote.Split(line)
	if err != nil {
		s.ui.Errorf("syntax error: %v", err)
		return nil
	}
	if len(words) == 0 {
		return nil
	}

	return s.dispatch(words[0], words[1:])
}

func (s *Shell) dispatch(name string, args []string) error {
	cmd, ok := s.commands[name]
	if !ok {
		s.log.WithField("command", name).Info("command not found")
		s.ui.Errorf("command not found: %s", name)
		if closest, ok := s.suggest(name); ok {
			s.ui.Infof("did you mean %s?", closest)
		}
		return nil
	}

	s.log.WithFields(logrus.Fields{"command": name, "args": len(args)}).Debug("dispatch")

	explanation, err := cmd.Run(s, args)
	if errors.Is(err, ErrExit) {
		return err
	}
	if err != nil {
		s.log.WithError(err).WithField("command", name).Info("command failed")
		s.ui.Errorf("%s: %s", name, describe(err))
		return nil
	}

	s.explain(explanation)
	return nil
}

func (s *Shell) explain(msg string) {
	if s.opts.Explain && msg != "" {
		s.ui.Info(msg)
	}
}

func (s *Shell) recordHistory(line string) {
	s.history = append(s.history, line)
	if limit := s.opts.HistoryLimit; limit > 0 && len(s.history) > limit {
		s.history = s.history[len(s.history)-limit:]
	}
}

// describe renders err the way a shell reports failures: path first, then the reason.
func describe(err error) string {
	var pe *vfs.PathError
	if errors.As(err, &pe) {
		if pe.Path == "" {
			return pe.Err.Error()
		}
		return pe.Path + ": " + pe.Err.Error()
	}
	return err.Error()
}
