// Package shell simulates a bash session over a fixed, read-only file
// system. Nothing is executed on the host; every command maps to canned or
// computed text.
package shell

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"slices"
	"strings"
)

// Shell runs command lines against the practice file system. The zero value
// is not usable; call New.
type Shell struct {
	intn  func(n int) int
	float func() float64
}

// Option configures a Shell.
type Option func(*Shell)

// WithRand pins the random source used for listing sizes and ping timings.
func WithRand(r *rand.Rand) Option {
	return func(s *Shell) {
		s.intn = r.IntN
		s.float = r.Float64
	}
}

// New returns a Shell backed by the global random source unless overridden.
func New(opts ...Option) *Shell {
	s := &Shell{intn: rand.IntN, float: rand.Float64}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var std = New()

// Execute runs line in cwd using the default shell.
func Execute(line, cwd string) (output, newCwd string) {
	return std.Execute(line, cwd)
}

// Execute runs one command line and returns its output together with the
// working directory after the command. An empty cwd means Home.
func (s *Shell) Execute(line, cwd string) (output, newCwd string) {
	if cwd == "" {
		cwd = Home
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", cwd
	}
	return s.run(line, cwd)
}

type handler func(s *Shell, c *call) string

// call is one simple command being dispatched. Handlers may move cwd.
type call struct {
	line  string
	cmd   string
	args  []string
	cwd   string
	stdin *string
}

// arg returns the unquoted i-th word, or "".
func (c *call) arg(i int) string {
	if i < len(c.args) {
		return unquote(c.args[i])
	}
	return ""
}

// operands returns the unquoted words after the command name that are not
// flags.
func (c *call) operands() []string {
	var out []string
	for _, a := range c.args[1:] {
		if len(a) > 1 && a[0] == '-' {
			continue
		}
		out = append(out, unquote(a))
	}
	return out
}

// hasFlag reports whether any short flag word contains r.
func (c *call) hasFlag(r rune) bool {
	for _, a := range c.args[1:] {
		if len(a) > 1 && a[0] == '-' && a[1] != '-' && strings.ContainsRune(a[1:], r) {
			return true
		}
	}
	return false
}

// flagValue returns the word following flag, or the remainder of a word
// that starts with flag ("-d:" style).
func (c *call) flagValue(flag string) (string, bool) {
	for i, a := range c.args[1:] {
		switch {
		case a == flag:
			if i+2 < len(c.args) {
				return unquote(c.args[i+2]), true
			}
			return "", false
		case strings.HasPrefix(a, flag):
			return unquote(a[len(flag):]), true
		}
	}
	return "", false
}

// rest returns the original text after the command name.
func (c *call) rest() string {
	return strings.TrimSpace(c.line[len(c.args[0]):])
}

var (
	forRe = regexp.MustCompile(`^for (\w+) in (.+?); ?do (.+?);? ?done$`)
	ifRe  = regexp.MustCompile(`^if \[ (-[fde]) (\S+) \]; ?then (.+?);(?: ?else (.+?);)? ?fi$`)
)

func (s *Shell) run(line, cwd string) (string, string) {
	if m := forRe.FindStringSubmatch(line); m != nil {
		return s.loop(m[1], m[2], m[3], cwd)
	}
	if m := ifRe.FindStringSubmatch(line); m != nil {
		return s.cond(m[1], m[2], m[3], m[4], cwd)
	}
	if parts := splitOutside(line, ';', '&'); len(parts) > 1 {
		var outs []string
		for _, p := range parts {
			var out string
			out, cwd = s.run(p, cwd)
			if out != "" {
				outs = append(outs, out)
			}
		}
		return strings.Join(outs, "\n"), cwd
	}
	if stages := splitOutside(line, '|'); len(stages) > 1 {
		var out string
		out, cwd = s.exec(stages[0], cwd, nil)
		for _, st := range stages[1:] {
			in := out
			out, cwd = s.exec(st, cwd, &in)
		}
		return out, cwd
	}
	return s.exec(line, cwd, nil)
}

func (s *Shell) exec(line, cwd string, stdin *string) (string, string) {
	args := splitArgs(line)
	if len(args) == 0 {
		return "", cwd
	}
	name := strings.ToLower(args[0])
	h, ok := rules[name]
	if !ok {
		if strings.HasPrefix(name, "./") || strings.HasPrefix(name, "/") {
			if n, found := Lookup(resolve(cwd, args[0])); found && !n.IsDir() {
				return fmt.Sprintf("Executed script: %s", args[0]), cwd
			}
		}
		return fmt.Sprintf("bash: %s: command not found", args[0]), cwd
	}
	c := &call{line: line, cmd: strings.ToLower(line), args: args, cwd: cwd, stdin: stdin}
	return h(s, c), c.cwd
}

// splitOutside splits line on any of seps outside quotes, dropping empty
// pieces. Doubled separators ("&&") count once.
func splitOutside(line string, seps ...rune) []string {
	var (
		out   []string
		cur   strings.Builder
		quote rune
	)
	flush := func() {
		if p := strings.TrimSpace(cur.String()); p != "" {
			out = append(out, p)
		}
		cur.Reset()
	}
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			cur.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			cur.WriteRune(r)
		case slices.Contains(seps, r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

// Names returns the commands the shell understands, sorted.
func Names() []string {
	out := make([]string, 0, len(rules))
	for name := range rules {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

var rules map[string]handler

func init() {
	rules = map[string]handler{
		"pwd":      func(_ *Shell, c *call) string { return c.cwd },
		"ls":       (*Shell).ls,
		"cd":       (*Shell).cd,
		"touch":    confirm("Created file: %s"),
		"mkdir":    confirm("Created directory: %s"),
		"rm":       confirm("Removed: %s"),
		"cp":       transfer("Copied"),
		"mv":       transfer("Moved"),
		"chmod":    (*Shell).chmod,
		"chown":    (*Shell).chown,
		"cat":      (*Shell).cat,
		"grep":     (*Shell).grep,
		"head":     (*Shell).head,
		"tail":     (*Shell).tail,
		"wc":       (*Shell).wc,
		"sort":     (*Shell).sort,
		"uniq":     (*Shell).uniq,
		"cut":      (*Shell).cut,
		"awk":      (*Shell).awk,
		"sed":      (*Shell).sed,
		"find":     (*Shell).find,
		"locate":   needs("locate", locateOut),
		"echo":     (*Shell).echo,
		"env":      (*Shell).env,
		"printenv": (*Shell).printenv,
		"export":   fixed(""),
		"read":     fixed(""),
		"clear":    fixed(""),
		"which":    (*Shell).which,
		"whereis":  (*Shell).whereis,
		"type":     (*Shell).typeOf,
		"ps":       fixed(psOut),
		"top":      fixed(topOut),
		"htop":     fixed(htopOut),
		"jobs":     fixed(jobsOut),
		"kill":     (*Shell).kill,
		"killall":  (*Shell).killall,
		"uname":    fixed(unameOut),
		"hostname": fixed("linuxlearn"),
		"whoami":   fixed("user"),
		"id":       fixed("uid=1000(user) gid=1000(user) groups=1000(user),27(sudo)"),
		"date":     fixed(dateOut),
		"uptime":   fixed(uptimeOut),
		"history":  fixed(historyOut),
		"df":       fixed(dfOut),
		"du":       fixed(duOut),
		"free":     fixed(freeOut),
		"vmstat":   fixed(vmstatOut),
		"iostat":   fixed(iostatOut),
		"iotop":    fixed(iotopOut),
		"lsof":     fixed(lsofOut),
		"netstat":  fixed(netstatOut),
		"ss":       fixed(ssOut),
		"nmap":     needs("nmap", nmapOut),
		"tcpdump":  fixed(tcpdumpOut),
		"iptables": fixed(iptablesOut),
		"ping":     (*Shell).ping,
		"wget":     needs("wget", wgetOut),
		"curl":     (*Shell).curl,
		"tar":      (*Shell).tar,
		"gzip":     (*Shell).gzip,
		"gunzip":   (*Shell).gunzip,
		"zip":      (*Shell).zip,
		"unzip":    confirm("Extracted: %s"),
		"apt":      (*Shell).apt,
		"apt-get":  (*Shell).apt,
		"dpkg":     (*Shell).dpkg,
		"snap":     fixed(snapOut),
		"flatpak":  fixed(flatpakOut),
		"sudo":     (*Shell).sudo,
		"bash":     (*Shell).script,
		"sh":       (*Shell).script,
		"help":     (*Shell).help,
		"man":      (*Shell).man,
	}
}

// fixed returns the same text regardless of arguments.
func fixed(out string) handler {
	return func(*Shell, *call) string { return out }
}

// needs returns out once the command has at least one operand.
func needs(name, out string) handler {
	return func(_ *Shell, c *call) string {
		if len(c.args) < 2 {
			return name + ": missing operand"
		}
		return out
	}
}

// confirm formats the first operand into a confirmation line.
func confirm(format string) handler {
	return func(_ *Shell, c *call) string {
		ops := c.operands()
		if len(ops) == 0 {
			return c.args[0] + ": missing operand"
		}
		return fmt.Sprintf(format, ops[0])
	}
}

func transfer(verb string) handler {
	return func(_ *Shell, c *call) string {
		ops := c.operands()
		switch len(ops) {
		case 0:
			return c.args[0] + ": missing file operand"
		case 1:
			return fmt.Sprintf("%s: missing destination file operand after '%s'", c.args[0], ops[0])
		}
		return fmt.Sprintf("%s: %s -> %s", verb, ops[0], ops[1])
	}
}
