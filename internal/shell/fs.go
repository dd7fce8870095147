package shell

import (
	"fmt"
	"path"
	"strings"
)

func (s *Shell) ls(c *call) string {
	target, shown := c.cwd, c.cwd
	if ops := c.operands(); len(ops) > 0 {
		shown = ops[0]
		target = resolve(c.cwd, ops[0])
	}
	n, ok := Lookup(target)
	if !ok {
		return fmt.Sprintf("ls: cannot access '%s': No such file or directory", shown)
	}
	if !n.IsDir() {
		return shown
	}
	if !c.hasFlag('l') {
		return strings.Join(n.Names(), "  ")
	}
	rows := make([]string, 0, len(n.children))
	for _, child := range n.children {
		perm, size := "-rw-r--r--", fmt.Sprint(s.intn(50000))
		if child.IsDir() {
			perm, size = "drwxr-xr-x", "4096"
		}
		rows = append(rows, fmt.Sprintf("%s  1 user user  %s Dec 10 10:30 %s", perm, size, child.Name))
	}
	return strings.Join(rows, "\n")
}

func (s *Shell) cd(c *call) string {
	target := c.arg(1)
	p := resolve(c.cwd, target)
	n, ok := Lookup(p)
	if !ok {
		return fmt.Sprintf("cd: %s: No such file or directory", target)
	}
	if !n.IsDir() {
		return fmt.Sprintf("cd: %s: Not a directory", target)
	}
	c.cwd = p
	return "Changed to directory: " + p
}

func (s *Shell) chmod(c *call) string {
	var rest []string
	for _, a := range c.args[1:] {
		switch a {
		case "-R", "-v", "-c", "-f", "--recursive":
			continue
		}
		rest = append(rest, unquote(a))
	}
	if len(rest) < 2 {
		return "chmod: missing operand"
	}
	return fmt.Sprintf("Changed permissions: %s to %s", rest[1], rest[0])
}

func (s *Shell) chown(c *call) string {
	if len(c.args) < 3 {
		return "chown: missing operand"
	}
	return "Changed ownership: " + strings.Join(c.args[1:], " ")
}

func (s *Shell) cat(c *call) string {
	ops := c.operands()
	if len(ops) == 0 {
		if c.stdin != nil {
			return *c.stdin
		}
		return "cat: missing operand"
	}
	outs := make([]string, 0, len(ops))
	for _, op := range ops {
		if IsDirPath(resolve(c.cwd, op)) {
			outs = append(outs, fmt.Sprintf("cat: %s: Is a directory", op))
			continue
		}
		outs = append(outs, contentOf(op))
	}
	return strings.Join(outs, "\n")
}

// contentOf returns the simulated contents of a file. Only the base name
// matters.
func contentOf(name string) string {
	switch path.Base(name) {
	case "report.txt":
		return reportTxt
	case "notes.md":
		return notesMd
	default:
		return fmt.Sprintf(genericFile, name)
	}
}

// find walks the tree from the start path, honoring -name and -type.
func (s *Shell) find(c *call) string {
	if len(c.args) < 2 {
		return "find: missing operand"
	}
	start := "."
	if first := c.arg(1); !strings.HasPrefix(first, "-") {
		start = first
	}
	pattern, _ := c.flagValue("-name")
	kind, _ := c.flagValue("-type")

	root, ok := Lookup(resolve(c.cwd, start))
	if !ok {
		return fmt.Sprintf("find: '%s': No such file or directory", start)
	}
	var hits []string
	var walk func(n *Node, shown, name string)
	walk = func(n *Node, shown, name string) {
		match := true
		if pattern != "" {
			m, err := path.Match(pattern, name)
			match = err == nil && m
		}
		switch kind {
		case "d":
			match = match && n.IsDir()
		case "f":
			match = match && !n.IsDir()
		}
		if match {
			hits = append(hits, shown)
		}
		for _, child := range n.children {
			walk(child, strings.TrimSuffix(shown, "/")+"/"+child.Name, child.Name)
		}
	}
	walk(root, start, path.Base(start))
	return strings.Join(hits, "\n")
}

var binaries = map[string]bool{
	"bash": true, "sh": true, "python3": true, "node": true, "vim": true,
	"nano": true, "git": true, "ssh": true, "systemctl": true,
}

var builtins = map[string]bool{
	"cd": true, "echo": true, "pwd": true, "export": true, "read": true,
	"type": true, "help": true, "history": true, "jobs": true, "kill": true,
}

func known(name string) bool {
	_, ok := rules[name]
	return ok || binaries[name]
}

func (s *Shell) which(c *call) string {
	var out []string
	for _, op := range c.operands() {
		if known(op) {
			out = append(out, binPath(op))
		}
	}
	return strings.Join(out, "\n")
}

func (s *Shell) whereis(c *call) string {
	ops := c.operands()
	if len(ops) == 0 {
		return "whereis [options] [-BMS <dir>... -f] <name>"
	}
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		if !known(op) {
			out = append(out, op+":")
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s /usr/share/man/man1/%s.1.gz", op, binPath(op), op))
	}
	return strings.Join(out, "\n")
}

func (s *Shell) typeOf(c *call) string {
	var out []string
	for _, op := range c.operands() {
		switch {
		case builtins[op]:
			out = append(out, op+" is a shell builtin")
		case known(op):
			out = append(out, fmt.Sprintf("%s is %s", op, binPath(op)))
		default:
			out = append(out, fmt.Sprintf("bash: type: %s: not found", op))
		}
	}
	return strings.Join(out, "\n")
}

func binPath(name string) string {
	switch name {
	case "iptables", "tcpdump":
		return "/usr/sbin/" + name
	}
	return "/usr/bin/" + name
}

func (s *Shell) script(c *call) string {
	ops := c.operands()
	if len(ops) == 0 {
		return ""
	}
	n, ok := Lookup(resolve(c.cwd, ops[0]))
	if !ok || n.IsDir() {
		return fmt.Sprintf("bash: %s: No such file or directory", ops[0])
	}
	return "Executed script: " + ops[0]
}
