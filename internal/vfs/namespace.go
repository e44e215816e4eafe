// Package vfs implements the simulator's in-memory namespace: a tree of
// directories and files addressed by POSIX-like paths, plus the current
// working directory cursor.
//
// Path resolution is a pure lookup. Only ChangeDirectory moves the cursor,
// and Delete trims it when the cursor's own directory disappears. A Namespace
// is not safe for concurrent use; callers that share one must serialize
// access themselves.
package vfs

import (
	"slices"
	"strings"
)

// Namespace is a virtual directory tree with a single cursor.
type Namespace struct {
	root   *Node
	cursor []string
}

// New creates a namespace holding only the root directory.
func New() *Namespace {
	return &Namespace{
		root:   newDirectory(rootMarker),
		cursor: []string{rootMarker},
	}
}

// CurrentPath returns the cursor as an absolute path string.
func (ns *Namespace) CurrentPath() string {
	return rootMarker + strings.Join(ns.cursor[1:], "/")
}

// Cursor returns a copy of the cursor segments, starting with "/".
func (ns *Namespace) Cursor() []string {
	return slices.Clone(ns.cursor)
}

// Lookup resolves path and describes the node it names.
func (ns *Namespace) Lookup(path string) (Info, error) {
	node, _, err := ns.resolve(path)
	if err != nil {
		return Info{}, pathErr("lookup", path, err)
	}
	return node.info(), nil
}

// List returns the sorted child names of the directory at path. An empty
// path lists the cursor directory. A path naming a file is reported as not
// found, since there is no directory to list.
func (ns *Namespace) List(path string) ([]string, error) {
	node, _, err := ns.resolve(path)
	if err != nil {
		return nil, pathErr("list", path, err)
	}
	if !node.IsDir() {
		return nil, pathErr("list", path, ErrPathNotFound)
	}
	return listChildren(node), nil
}

// ChangeDirectory moves the cursor to the directory at path and returns the
// new current path. On failure the cursor is left untouched.
func (ns *Namespace) ChangeDirectory(path string) (string, error) {
	node, stack, err := ns.resolve(path)
	if err != nil {
		return "", pathErr("chdir", path, err)
	}
	if !node.IsDir() {
		return "", pathErr("chdir", path, ErrNotADirectory)
	}
	ns.cursor = stack
	return ns.CurrentPath(), nil
}

// CreateFile creates an empty file. The final path segment is the new name
// and the preceding segments must name an existing directory.
func (ns *Namespace) CreateFile(path string) error {
	return ns.create("create", path, func(name string) *Node { return newFile(name, "") })
}

// CreateDirectory creates an empty directory, following the same rules as CreateFile.
func (ns *Namespace) CreateDirectory(path string) error {
	return ns.create("mkdir", path, newDirectory)
}

func (ns *Namespace) create(op, path string, build func(name string) *Node) error {
	parentPath, name := splitParent(path)
	if name == "" || name == "." || name == ".." {
		// these always name an entry that already exists
		return pathErr(op, path, ErrNameConflict)
	}

	parent, err := ns.parentDir(parentPath)
	if err != nil {
		return pathErr(op, path, err)
	}
	if err := insertChild(parent, name, build(name)); err != nil {
		return pathErr(op, path, err)
	}
	return nil
}

func (ns *Namespace) parentDir(path string) (*Node, error) {
	node, _, err := ns.resolve(path)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, ErrNotADirectory
	}
	return node, nil
}

// Delete removes the node at path from its parent directory. Directories are
// removed together with their contents. If the cursor lies inside the removed
// subtree it is moved to the removed node's parent.
func (ns *Namespace) Delete(path string) error {
	w, err := ns.resolveWalk(path)
	if err != nil {
		return pathErr("remove", path, err)
	}
	if len(w) == 1 {
		return pathErr("remove", path, ErrRootDirectory)
	}

	parent := w[len(w)-2].node
	if _, err := removeChild(parent, w[len(w)-1].name); err != nil {
		return pathErr("remove", path, err)
	}

	removed := w.names()
	if len(ns.cursor) >= len(removed) && slices.Equal(ns.cursor[:len(removed)], removed) {
		ns.cursor = removed[:len(removed)-1]
	}
	return nil
}

// ReadFile returns the content of the file at path verbatim.
func (ns *Namespace) ReadFile(path string) (string, error) {
	node, _, err := ns.resolve(path)
	if err != nil {
		return "", pathErr("read", path, err)
	}
	if node.IsDir() {
		return "", pathErr("read", path, ErrNotAFile)
	}
	return node.content, nil
}

// WriteFile replaces the content of the file at path, creating the file in
// its parent directory when it does not exist yet.
func (ns *Namespace) WriteFile(path, content string) error {
	if node, _, err := ns.resolve(path); err == nil {
		if node.IsDir() {
			return pathErr("write", path, ErrNotAFile)
		}
		node.content = content
		return nil
	}

	parentPath, name := splitParent(path)
	if name == "" || name == "." || name == ".." || strings.HasSuffix(path, "/") {
		return pathErr("write", path, ErrPathNotFound)
	}
	parent, err := ns.parentDir(parentPath)
	if err != nil {
		return pathErr("write", path, err)
	}
	if err := insertChild(parent, name, newFile(name, content)); err != nil {
		return pathErr("write", path, err)
	}
	return nil
}
