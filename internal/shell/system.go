package shell

import (
	"fmt"
	"strings"

	"github.com/abhisek/linuxlearn/internal/commands"
)

func (s *Shell) kill(c *call) string {
	ops := c.operands()
	if len(ops) == 0 {
		return "kill: usage: kill [-s sigspec | -n signum | -sigspec] pid | jobspec ... or kill -l [sigspec]"
	}
	return fmt.Sprintf("Process %s terminated", ops[0])
}

func (s *Shell) killall(c *call) string {
	ops := c.operands()
	if len(ops) == 0 {
		return "killall: missing operand"
	}
	return fmt.Sprintf("Terminated all processes named %s", ops[0])
}

// ping reports two replies with timings in [10.0, 15.0) ms.
func (s *Shell) ping(c *call) string {
	ops := strings.Fields(c.cmd)[1:]
	host := ""
	for _, a := range ops {
		if !strings.HasPrefix(a, "-") {
			host = a
		}
	}
	if host == "" {
		return "ping: usage error: Destination address required"
	}
	return fmt.Sprintf(pingOut, host, 10+s.float()*5, 10+s.float()*5)
}

func (s *Shell) curl(c *call) string {
	if len(c.operands()) == 0 {
		return "curl: try 'curl --help' for more information"
	}
	if c.hasFlag('I') {
		return curlHeadOut
	}
	return curlBodyOut
}

// archiveOperands splits tar's words into the mode flags and the rest.
func archiveOperands(c *call) (mode string, rest []string) {
	for i, a := range c.args[1:] {
		a = unquote(a)
		if i == 0 && !strings.Contains(a, ".") && !strings.Contains(a, "/") {
			mode = strings.TrimPrefix(a, "-")
			continue
		}
		if strings.HasPrefix(a, "-") {
			mode += a[1:]
			continue
		}
		rest = append(rest, a)
	}
	return mode, rest
}

func (s *Shell) tar(c *call) string {
	mode, rest := archiveOperands(c)
	archive := ""
	if len(rest) > 0 {
		archive = rest[0]
	}
	switch {
	case strings.ContainsRune(mode, 'c'):
		if archive == "" {
			return "tar: Cowardly refusing to create an empty archive"
		}
		return "Created archive: " + archive
	case strings.ContainsRune(mode, 'x'):
		if archive == "" {
			return "tar: Refusing to read archive contents from terminal (missing -f option?)"
		}
		return "Extracted: " + archive
	case strings.ContainsRune(mode, 't'):
		return tarListOut
	}
	return "tar: You must specify one of the '-Acdtrux', '--delete' or '--test-label' options"
}

func (s *Shell) gzip(c *call) string {
	if c.hasFlag('d') {
		return s.gunzip(c)
	}
	ops := c.operands()
	if len(ops) == 0 {
		return "gzip: compressed data not written to a terminal. Use -f to force compression."
	}
	return fmt.Sprintf("Compressed: %s -> %s.gz", ops[0], ops[0])
}

func (s *Shell) gunzip(c *call) string {
	ops := c.operands()
	if len(ops) == 0 {
		return "gzip: compressed data not read from a terminal. Use -f to force decompression."
	}
	return fmt.Sprintf("Decompressed: %s -> %s", ops[0], strings.TrimSuffix(ops[0], ".gz"))
}

func (s *Shell) zip(c *call) string {
	ops := c.operands()
	if len(ops) < 2 {
		return "zip error: Nothing to do!"
	}
	return "Created archive: " + ops[0]
}

func (s *Shell) apt(c *call) string {
	ops := c.operands()
	if len(ops) == 0 {
		return "apt 2.4.8 (amd64)\nUsage: apt [options] command"
	}
	switch ops[0] {
	case "update":
		return aptUpdateOut
	case "upgrade":
		return "Reading package lists... Done\nCalculating upgrade... Done\n0 upgraded, 0 newly installed, 0 to remove and 0 not upgraded."
	case "install", "remove", "purge":
		if len(ops) < 2 {
			return "0 upgraded, 0 newly installed, 0 to remove and 0 not upgraded."
		}
		if ops[0] == "install" {
			return fmt.Sprintf(aptInstallOut, ops[1])
		}
		return fmt.Sprintf(aptRemoveOut, ops[1])
	case "search":
		if len(ops) < 2 {
			return "E: You must give at least one search pattern"
		}
		return fmt.Sprintf("Sorting... Done\nFull Text Search... Done\n%s/jammy 1.0-1 amd64\n  %s package", ops[1], ops[1])
	case "list":
		return "Listing... Done\nbash/jammy,now 5.1-6ubuntu1 amd64 [installed]\ncurl/jammy,now 7.81.0-1ubuntu1 amd64 [installed]"
	}
	return fmt.Sprintf("E: Invalid operation %s", ops[0])
}

func (s *Shell) dpkg(c *call) string {
	if c.hasFlag('l') {
		return dpkgOut
	}
	return "dpkg: error: need an action option"
}

func (s *Shell) sudo(c *call) string {
	rest := c.rest()
	if rest == "" {
		return "usage: sudo command"
	}
	out, cwd := s.exec(rest, c.cwd, c.stdin)
	c.cwd = cwd
	return out
}

func (s *Shell) help(*call) string {
	return "Available commands:\n" + strings.Join(Names(), "  ")
}

// man prints the reference entry for a command.
func (s *Shell) man(c *call) string {
	ops := c.operands()
	if len(ops) == 0 {
		return "What manual page do you want?"
	}
	info, ok := commands.Lookup(ops[0])
	if !ok {
		return "No manual entry for " + ops[0]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "NAME\n    %s - %s\n\nSYNOPSIS\n    %s\n", info.Name, info.Description, info.Usage)
	if info.Why != "" {
		fmt.Fprintf(&b, "\nDESCRIPTION\n    %s\n", info.Why)
	}
	if len(info.Options) > 0 {
		b.WriteString("\nOPTIONS\n")
		for _, o := range info.Options {
			fmt.Fprintf(&b, "    %-12s %s\n", o.Flag, o.Description)
		}
	}
	if len(info.Examples) > 0 {
		b.WriteString("\nEXAMPLES\n")
		for _, e := range info.Examples {
			fmt.Fprintf(&b, "    %s\n        %s\n", e.Command, e.Explanation)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
