package vfs

import "fmt"

// seedEntry describes one node of the default layout. Directories have no content.
type seedEntry struct {
	path    string
	dir     bool
	content string
}

// defaultLayout is the tree every simulator session starts with. Parents are
// listed before their children.
var defaultLayout = []seedEntry{
	{path: "/bin", dir: true},
	{path: "/bin/ls", content: "#!/bin/bash\necho \"List directory contents\""},
	{path: "/bin/cat", content: "#!/bin/bash\necho \"Concatenate files\""},
	{path: "/etc", dir: true},
	{path: "/etc/passwd", content: "root:x:0:0:root:/root:/bin/bash\nuser:x:1000:1000:user:/home/user:/bin/bash"},
	{path: "/etc/hostname", content: "linux-simulator"},
	{path: "/home", dir: true},
	{path: "/home/user", dir: true},
	{path: "/home/user/Documents", dir: true},
	{path: "/home/user/Downloads", dir: true},
	{path: "/home/user/hello.txt", content: "Hello, Linux World!"},
	{path: "/var", dir: true},
	{path: "/var/log", dir: true},
	{path: "/var/log/syslog", content: "System log file"},
}

// NewDefault creates a namespace populated with the standard seed layout,
// with the cursor at the root.
func NewDefault() *Namespace {
	ns := New()
	if err := ns.seed(defaultLayout); err != nil {
		// the layout is a fixed table; failing here is a programming error
		panic(fmt.Sprintf("vfs: invalid seed layout: %v", err))
	}
	return ns
}

func (ns *Namespace) seed(entries []seedEntry) error {
	for _, e := range entries {
		var err error
		if e.dir {
			err = ns.CreateDirectory(e.path)
		} else {
			err = ns.WriteFile(e.path, e.content)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
