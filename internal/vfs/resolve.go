package vfs

import "strings"

// rootMarker is the first element of every cursor and working stack.
const rootMarker = "/"

// frame is one step of a working stack: the segment name and the node it denotes.
type frame struct {
	name string
	node *Node
}

// walk is the resolver's working stack. The first frame is always the root.
type walk []frame

func (w walk) top() *Node {
	return w[len(w)-1].node
}

func (w walk) names() []string {
	names := make([]string, len(w))
	for i, f := range w {
		names[i] = f.name
	}
	return names
}

// cursorWalk rebuilds the working stack for the current cursor.
func (ns *Namespace) cursorWalk() (walk, error) {
	w := walk{{name: rootMarker, node: ns.root}}
	for _, name := range ns.cursor[1:] {
		child, ok := w.top().children[name]
		if !ok || !child.IsDir() {
			return nil, ErrPathNotFound
		}
		w = append(w, frame{name: name, node: child})
	}
	return w, nil
}

// resolve maps path to a node without side effects. Absolute paths start at
// the root, relative ones at the cursor. It returns the final node together
// with the segment stack leading to it, which callers may commit as the new
// cursor.
func (ns *Namespace) resolve(path string) (*Node, []string, error) {
	w, err := ns.resolveWalk(path)
	if err != nil {
		return nil, nil, err
	}
	return w.top(), w.names(), nil
}

func (ns *Namespace) resolveWalk(path string) (walk, error) {
	var w walk
	if strings.HasPrefix(path, "/") {
		w = walk{{name: rootMarker, node: ns.root}}
	} else {
		var err error
		if w, err = ns.cursorWalk(); err != nil {
			return nil, err
		}
	}

	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			// never pops past the root
			if len(w) > 1 {
				w = w[:len(w)-1]
			}
		default:
			cur := w.top()
			if !cur.IsDir() {
				return nil, ErrPathNotFound
			}
			child, ok := cur.children[seg]
			if !ok {
				return nil, ErrPathNotFound
			}
			w = append(w, frame{name: seg, node: child})
		}
	}
	return w, nil
}

// splitParent separates path into the parent directory path and the final
// segment. Trailing slashes are ignored, so "docs/" names "docs".
func splitParent(path string) (parent, name string) {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		if strings.HasPrefix(path, "/") {
			return "/", ""
		}
		return "", ""
	}

	idx := strings.LastIndex(trimmed, "/")
	switch {
	case idx < 0:
		return "", trimmed
	case idx == 0:
		return "/", trimmed[1:]
	default:
		return trimmed[:idx], trimmed[idx+1:]
	}
}
