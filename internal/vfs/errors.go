package vfs

import "errors"

// Error kinds returned by namespace operations. Callers match them with errors.Is.
var (
	ErrPathNotFound  = errors.New("no such file or directory")
	ErrNotADirectory = errors.New("not a directory")
	ErrNotAFile      = errors.New("is a directory")
	ErrNameConflict  = errors.New("file exists")
	ErrRootDirectory = errors.New("cannot remove root directory")
)

// PathError records a failed namespace operation and the path it was given.
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error kind for use with errors.Is/As.
func (e *PathError) Unwrap() error {
	return e.Err
}

func pathErr(op, path string, err error) error {
	return &PathError{Op: op, Path: path, Err: err}
}
