package shell

import (
	"slices"
	"strings"
)

// Home is the learner's home directory and the starting directory.
const Home = "/home/user"

// Node is an entry in the read-only practice file system. Directories keep
// their children in declaration order so listings are stable.
type Node struct {
	Name     string
	isDir    bool
	children []*Node
	index    map[string]*Node
}

func dir(name string, children ...*Node) *Node {
	n := &Node{Name: name, isDir: true, children: children, index: make(map[string]*Node, len(children))}
	for _, c := range children {
		n.index[c.Name] = c
	}
	return n
}

func file(name string) *Node {
	return &Node{Name: name}
}

// IsDir reports whether n is a directory.
func (n *Node) IsDir() bool { return n.isDir }

// Child returns the named entry of a directory.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.index[name]
	return c, ok
}

// Children returns the directory entries in listing order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Names returns the entry names in listing order.
func (n *Node) Names() []string {
	out := make([]string, len(n.children))
	for i, c := range n.children {
		out[i] = c.Name
	}
	return out
}

// Root returns the root of the practice file system.
func Root() *Node { return root }

// Lookup walks an absolute path from the root.
func Lookup(p string) (*Node, bool) {
	n := root
	for _, seg := range strings.Split(p, "/") {
		if seg == "" {
			continue
		}
		next, ok := n.Child(seg)
		if !ok {
			return nil, false
		}
		n = next
	}
	return n, true
}

// IsDirPath reports whether p names an existing directory.
func IsDirPath(p string) bool {
	n, ok := Lookup(p)
	return ok && n.IsDir()
}

var root = dir("",
	dir("home",
		dir("user",
			dir("documents",
				file("report.txt"),
				file("presentation.pdf"),
				file("notes.md"),
				dir("projects",
					dir("website",
						file("index.html"),
						file("style.css"),
						file("script.js"),
						dir("images",
							file("logo.png"),
							file("banner.jpg"),
						),
					),
					dir("app",
						file("main.py"),
						file("config.json"),
						file("requirements.txt"),
						dir("src",
							file("utils.py"),
							file("models.py"),
						),
					),
				),
			),
			dir("downloads",
				file("ubuntu-20.04.iso"),
				file("software.deb"),
				file("backup.tar.gz"),
				file("music.mp3"),
				file("video.mp4"),
			),
			dir("pictures",
				dir("vacation2023",
					file("beach.jpg"),
					file("sunset.png"),
					file("family.jpg"),
				),
				dir("screenshots",
					file("desktop.png"),
					file("terminal.png"),
				),
				dir("wallpapers",
					file("nature.jpg"),
					file("abstract.png"),
				),
			),
			dir("videos",
				dir("tutorials",
					file("linux_basics.mp4"),
					file("coding_tips.avi"),
				),
				dir("personal",
					file("birthday.mp4"),
					file("vacation.mov"),
				),
			),
			dir("config",
				file(".bashrc"),
				file(".vimrc"),
				file(".gitconfig"),
				file("app_settings.conf"),
			),
			dir("scripts",
				file("backup.sh"),
				file("deploy.sh"),
				file("cleanup.py"),
				file("monitor.sh"),
			),
			dir("logs",
				file("system.log"),
				file("app.log"),
				file("error.log"),
				file("access.log"),
			),
		),
	),
	dir("var",
		dir("log",
			file("syslog"),
			file("auth.log"),
			file("kern.log"),
		),
		dir("www",
			dir("html",
				file("index.html"),
				file("about.html"),
			),
		),
	),
	dir("etc",
		file("passwd"),
		file("hosts"),
		file("fstab"),
		dir("nginx",
			file("nginx.conf"),
			dir("sites-available",
				file("default"),
				file("mysite"),
			),
		),
	),
	dir("tmp",
		file("temp_file.txt"),
		dir("cache",
			file("app_cache.tmp"),
		),
	),
)
