package vfs

// Kind distinguishes the two node variants.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

// String returns a short label for the kind
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Node is a directory or a file. A directory exclusively owns its children;
// a file owns its content.
type Node struct {
	name     string
	kind     Kind
	content  string
	children map[string]*Node
}

func newDirectory(name string) *Node {
	return &Node{
		name:     name,
		kind:     KindDirectory,
		children: make(map[string]*Node),
	}
}

func newFile(name, content string) *Node {
	return &Node{
		name:    name,
		kind:    KindFile,
		content: content,
	}
}

// IsDir reports whether the node is a directory
func (n *Node) IsDir() bool {
	return n.kind == KindDirectory
}

// Info is a read-only snapshot of a node handed out to callers.
type Info struct {
	Name string
	Kind Kind
	// Size is the content length in bytes for a file and the child count for a directory.
	Size int
}

// IsDir reports whether the described node is a directory
func (i Info) IsDir() bool {
	return i.Kind == KindDirectory
}

func (n *Node) info() Info {
	size := len(n.content)
	if n.IsDir() {
		size = len(n.children)
	}
	return Info{Name: n.name, Kind: n.kind, Size: size}
}
