package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertChild(t *testing.T) {
	dir := newDirectory("work")

	require.NoError(t, insertChild(dir, "notes", newFile("notes", "a")))
	assert.Contains(t, dir.children, "notes")

	err := insertChild(dir, "notes", newDirectory("notes"))
	assert.ErrorIs(t, err, ErrNameConflict)
	assert.Equal(t, KindFile, dir.children["notes"].kind, "conflicting insert must not replace the child")
	assert.Equal(t, "a", dir.children["notes"].content)
}

func TestRemoveChild(t *testing.T) {
	dir := newDirectory("work")
	require.NoError(t, insertChild(dir, "notes", newFile("notes", "keep me")))

	removed, err := removeChild(dir, "notes")
	require.NoError(t, err)
	assert.Equal(t, "keep me", removed.content)
	assert.Empty(t, dir.children)

	_, err = removeChild(dir, "notes")
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestListChildren(t *testing.T) {
	dir := newDirectory("work")
	assert.Equal(t, []string{}, listChildren(dir))

	for _, name := range []string{"zeta", "Alpha", "beta", "alpha"} {
		require.NoError(t, insertChild(dir, name, newFile(name, "")))
	}
	assert.Equal(t, []string{"Alpha", "alpha", "beta", "zeta"}, listChildren(dir))
}

func TestSplitParent(t *testing.T) {
	tests := []struct {
		path       string
		wantParent string
		wantName   string
	}{
		{"notes.txt", "", "notes.txt"},
		{"docs/", "", "docs"},
		{"/etc", "/", "etc"},
		{"/home/user/hello.txt", "/home/user", "hello.txt"},
		{"../x", "..", "x"},
		{"a//b", "a/", "b"},
		{"/", "/", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			parent, name := splitParent(tt.path)
			assert.Equal(t, tt.wantParent, parent)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
