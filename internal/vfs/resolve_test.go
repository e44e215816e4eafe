package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		cwd       string
		path      string
		wantName  string
		wantStack []string
		wantErr   error
	}{
		{"root", "/", "/", "/", []string{"/"}, nil},
		{"empty path is cursor", "/home/user", "", "user", []string{"/", "home", "user"}, nil},
		{"absolute file", "/", "/home/user/hello.txt", "hello.txt", []string{"/", "home", "user", "hello.txt"}, nil},
		{"relative child", "/home", "user/Documents", "Documents", []string{"/", "home", "user", "Documents"}, nil},
		{"dot segments", "/home", "./user/./", "user", []string{"/", "home", "user"}, nil},
		{"double slashes", "/", "//var///log//", "log", []string{"/", "var", "log"}, nil},
		{"parent", "/home/user", "..", "home", []string{"/", "home"}, nil},
		{"parent past root", "/", "../../..", "/", []string{"/"}, nil},
		{"parent then sibling", "/home/user", "../../etc/passwd", "passwd", []string{"/", "etc", "passwd"}, nil},
		{"absolute with parent", "/var/log", "/home/../var", "var", []string{"/", "var"}, nil},
		{"missing segment", "/", "/home/nobody", "", nil, ErrPathNotFound},
		{"descend into file", "/", "/etc/passwd/x", "", nil, ErrPathNotFound},
		{"short circuits", "/", "/missing/../home", "", nil, ErrPathNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := NewDefault()
			_, err := ns.ChangeDirectory(tt.cwd)
			require.NoError(t, err)
			before := ns.Cursor()

			node, stack, err := ns.resolve(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, node)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantName, node.name)
				assert.Equal(t, tt.wantStack, stack)
			}
			assert.Equal(t, before, ns.Cursor(), "resolution must not move the cursor")
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	ns := NewDefault()
	_, err := ns.ChangeDirectory("/home/user")
	require.NoError(t, err)

	first, firstStack, err := ns.resolve("../../var/log/../log/syslog")
	require.NoError(t, err)
	second, secondStack, err := ns.resolve("../../var/log/../log/syslog")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, firstStack, secondStack)
}

func TestResolveStackIsIndependentOfCursor(t *testing.T) {
	ns := NewDefault()
	_, err := ns.ChangeDirectory("/home/user")
	require.NoError(t, err)

	_, stack, err := ns.resolve("Documents")
	require.NoError(t, err)
	stack[1] = "mutated"

	assert.Equal(t, "/home/user", ns.CurrentPath())
}
