package vfs

import (
	"slices"

	"github.com/samber/lo"
)

// insertChild adds node under dir. The name must not already be taken.
func insertChild(dir *Node, name string, node *Node) error {
	if _, exists := dir.children[name]; exists {
		return ErrNameConflict
	}
	node.name = name
	dir.children[name] = node
	return nil
}

// removeChild detaches the named child from dir and returns it.
func removeChild(dir *Node, name string) (*Node, error) {
	child, exists := dir.children[name]
	if !exists {
		return nil, ErrPathNotFound
	}
	delete(dir.children, name)
	return child, nil
}

// listChildren returns the child names of dir in lexicographic order.
func listChildren(dir *Node) []string {
	names := lo.Keys(dir.children)
	slices.Sort(names)
	return names
}
