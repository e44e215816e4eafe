package shell

import (
	"errors"
	"strings"

	"github.com/zoro11031/linux-sim/internal/vfs"
)

type editorKind int

const (
	editorVi editorKind = iota
	editorNano
)

// editorSession is an append-only line buffer for one file. Both editors
// accept both sets of exit keys.
type editorSession struct {
	path  string
	kind  editorKind
	lines []string
}

func runVi(s *Shell, args []string) (string, error) {
	return s.openEditor(args, editorVi)
}

func runNano(s *Shell, args []string) (string, error) {
	return s.openEditor(args, editorNano)
}

func (s *Shell) openEditor(args []string, kind editorKind) (string, error) {
	if len(args) == 0 {
		name := "vi"
		if kind == editorNano {
			name = "nano"
		}
		return "", s.commands[name].usageError()
	}
	path := args[0]

	info, err := s.ns.Lookup(path)
	if err == nil && info.IsDir() {
		return "", &vfs.PathError{Op: "open", Path: path, Err: vfs.ErrNotAFile}
	}
	if err != nil && !errors.Is(err, vfs.ErrPathNotFound) {
		return "", err
	}

	s.editor = &editorSession{path: path, kind: kind}
	s.mode = ModeEditor

	s.ui.Infof("Editing '%s'", path)
	if kind == editorNano {
		s.ui.Info("Type ^X (Ctrl+X) to save and exit")
		s.ui.Info("Type ^C (Ctrl+C) to exit without saving")
	} else {
		s.ui.Info("Type :wq to save and quit")
		s.ui.Info("Type :q! to quit without saving")
	}
	return "Editing file: " + path, nil
}

func (s *Shell) editorInput(line string) {
	switch strings.TrimSpace(line) {
	case ":wq", "^X":
		s.saveEditor()
	case ":q!", "^C":
		s.closeEditor()
		s.ui.Info("Editing cancelled")
		s.explain("File editing cancelled")
	default:
		s.editor.lines = append(s.editor.lines, line)
	}
}

// saveEditor writes the buffer. On failure the editor stays open so the
// user can still quit without saving.
func (s *Shell) saveEditor() {
	path := s.editor.path
	content := strings.Join(s.editor.lines, "\n")

	if err := s.ns.WriteFile(path, content); err != nil {
		s.log.WithError(err).WithField("path", path).Info("editor save failed")
		s.ui.Errorf("cannot save: %s", describe(err))
		return
	}

	s.log.WithField("path", path).Debug("editor saved")
	s.closeEditor()
	s.ui.Successf("'%s' saved", path)
	s.explain("Saved file: " + path)
}

func (s *Shell) closeEditor() {
	s.editor = nil
	s.mode = ModeCommand
}
