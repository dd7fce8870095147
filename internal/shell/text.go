package shell

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// input returns the text a filter works on: the named file, else stdin.
func (c *call) input(file string) (string, bool) {
	if file != "" {
		return contentOf(file), true
	}
	if c.stdin != nil {
		return *c.stdin, true
	}
	return "", false
}

func (s *Shell) grep(c *call) string {
	ops := c.operands()
	if len(ops) == 0 {
		return "Usage: grep [OPTION]... PATTERNS [FILE]..."
	}
	if len(ops) > 1 || c.stdin == nil {
		return grepOut
	}
	pattern := ops[0]
	fold := c.hasFlag('i')
	if fold {
		pattern = strings.ToLower(pattern)
	}
	var hits []string
	for _, l := range strings.Split(*c.stdin, "\n") {
		cmp := l
		if fold {
			cmp = strings.ToLower(l)
		}
		if strings.Contains(cmp, pattern) != c.hasFlag('v') {
			hits = append(hits, l)
		}
	}
	return strings.Join(hits, "\n")
}

// lineCount reads "-n N" or "-N", defaulting to 10.
func (c *call) lineCount() int {
	if v, ok := c.flagValue("-n"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	for _, a := range c.args[1:] {
		if n, err := strconv.Atoi(strings.TrimPrefix(a, "-")); err == nil && strings.HasPrefix(a, "-") {
			return n
		}
	}
	return 10
}

// fileOperand returns the first operand that is not the value of -n.
func (c *call) fileOperand() string {
	for i := 1; i < len(c.args); i++ {
		a := c.args[i]
		if a == "-n" {
			i++
			continue
		}
		if len(a) > 1 && a[0] == '-' {
			continue
		}
		return unquote(a)
	}
	return ""
}

func (s *Shell) head(c *call) string {
	if c.fileOperand() != "" || c.stdin == nil {
		if len(c.args) < 2 {
			return "head: missing operand"
		}
		return headOut
	}
	ls := strings.Split(*c.stdin, "\n")
	n := c.lineCount()
	if n < 0 {
		// -n -N prints all but the last N lines.
		n = max(0, len(ls)+n)
	}
	return strings.Join(ls[:min(n, len(ls))], "\n")
}

func (s *Shell) tail(c *call) string {
	if c.fileOperand() != "" || c.stdin == nil {
		if len(c.args) < 2 {
			return "tail: missing operand"
		}
		return tailOut
	}
	ls := strings.Split(*c.stdin, "\n")
	n := c.lineCount()
	if n < 0 {
		n = -n
	}
	return strings.Join(ls[max(0, len(ls)-n):], "\n")
}

func (s *Shell) wc(c *call) string {
	if file := c.fileOperand(); file != "" {
		return "  25  150  1024 " + file
	}
	if c.stdin == nil {
		return "wc: missing operand"
	}
	in := *c.stdin
	return fmt.Sprintf("  %d  %d  %d", strings.Count(in, "\n")+1, len(strings.Fields(in)), len(in))
}

func (s *Shell) sort(c *call) string {
	in, ok := c.input(c.fileOperand())
	if !ok {
		return "sort: missing operand"
	}
	ls := strings.Split(in, "\n")
	if c.hasFlag('n') {
		slices.SortStableFunc(ls, func(a, b string) int {
			x, _ := strconv.ParseFloat(strings.TrimSpace(a), 64)
			y, _ := strconv.ParseFloat(strings.TrimSpace(b), 64)
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		})
	} else {
		slices.Sort(ls)
	}
	if c.hasFlag('r') {
		slices.Reverse(ls)
	}
	if c.hasFlag('u') {
		ls = slices.Compact(ls)
	}
	return strings.Join(ls, "\n")
}

func (s *Shell) uniq(c *call) string {
	in, ok := c.input(c.fileOperand())
	if !ok {
		return "uniq: missing operand"
	}
	var out []string
	var prev string
	count := 0
	emit := func() {
		if count == 0 {
			return
		}
		if c.hasFlag('c') {
			out = append(out, fmt.Sprintf("%7d %s", count, prev))
		} else {
			out = append(out, prev)
		}
	}
	for _, l := range strings.Split(in, "\n") {
		if count > 0 && l == prev {
			count++
			continue
		}
		emit()
		prev, count = l, 1
	}
	emit()
	return strings.Join(out, "\n")
}

func (s *Shell) cut(c *call) string {
	fields, ok := c.flagValue("-f")
	if !ok {
		return "cut: you must specify a list of bytes, characters, or fields"
	}
	n, err := strconv.Atoi(fields)
	if err != nil || n < 1 {
		return fmt.Sprintf("cut: invalid field value '%s'", fields)
	}
	delim, ok := c.flagValue("-d")
	if !ok {
		delim = "\t"
	}
	var file string
	for i := 1; i < len(c.args); i++ {
		a := c.args[i]
		if a == "-d" || a == "-f" {
			i++
			continue
		}
		if !strings.HasPrefix(a, "-") {
			file = unquote(a)
			break
		}
	}
	in, ok := c.input(file)
	if !ok {
		return "cut: missing operand"
	}
	var out []string
	for _, l := range strings.Split(in, "\n") {
		parts := strings.Split(l, delim)
		switch {
		case len(parts) == 1:
			out = append(out, l)
		case n <= len(parts):
			out = append(out, parts[n-1])
		default:
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}

var (
	awkPrint = regexp.MustCompile(`^\{\s*print\s*(.*?)\s*\}$`)
	awkField = regexp.MustCompile(`^\$(\d+)$`)
)

// awk understands programs of the form {print $1, $3}.
func (s *Shell) awk(c *call) string {
	sep, hasSep := c.flagValue("-F")
	var prog, file string
	for i := 1; i < len(c.args); i++ {
		a := c.args[i]
		switch {
		case a == "-F":
			i++
		case strings.HasPrefix(a, "-F"):
		case prog == "":
			prog = unquote(a)
		case file == "":
			file = unquote(a)
		}
	}
	if prog == "" {
		return "usage: awk [-F fs] 'prog' [file ...]"
	}
	m := awkPrint.FindStringSubmatch(prog)
	if m == nil {
		return fmt.Sprintf("awk: syntax error in program '%s'", prog)
	}
	in, ok := c.input(file)
	if !ok {
		return ""
	}
	exprs := strings.FieldsFunc(m[1], func(r rune) bool { return r == ',' || r == ' ' })
	var out []string
	for _, l := range strings.Split(in, "\n") {
		var fields []string
		if hasSep {
			fields = strings.Split(l, sep)
		} else {
			fields = strings.Fields(l)
		}
		if len(exprs) == 0 {
			out = append(out, l)
			continue
		}
		vals := make([]string, 0, len(exprs))
		for _, e := range exprs {
			fm := awkField.FindStringSubmatch(e)
			if fm == nil {
				vals = append(vals, strings.Trim(e, `"`))
				continue
			}
			i, _ := strconv.Atoi(fm[1])
			switch {
			case i == 0:
				vals = append(vals, l)
			case i <= len(fields):
				vals = append(vals, fields[i-1])
			default:
				vals = append(vals, "")
			}
		}
		out = append(out, strings.Join(vals, " "))
	}
	return strings.Join(out, "\n")
}

// sed applies one s/old/new/[g] substitution.
func (s *Shell) sed(c *call) string {
	var script, file string
	for _, a := range c.args[1:] {
		if a == "-e" || a == "-i" {
			continue
		}
		switch {
		case script == "":
			script = unquote(a)
		case file == "":
			file = unquote(a)
		}
	}
	if len(script) < 4 || script[0] != 's' {
		return "sed: -e expression #1, char 1: unknown command"
	}
	parts := strings.Split(script[2:], script[1:2])
	if len(parts) < 2 {
		return fmt.Sprintf("sed: -e expression #1, char %d: unterminated `s' command", len(script))
	}
	old, repl := parts[0], parts[1]
	global := len(parts) > 2 && strings.Contains(parts[2], "g")
	in, ok := c.input(file)
	if !ok {
		return ""
	}
	ls := strings.Split(in, "\n")
	for i, l := range ls {
		if global {
			ls[i] = strings.ReplaceAll(l, old, repl)
		} else {
			ls[i] = strings.Replace(l, old, repl, 1)
		}
	}
	return strings.Join(ls, "\n")
}

func (s *Shell) echo(c *call) string {
	rest := c.rest()
	for _, flag := range []string{"-n ", "-e "} {
		rest = strings.TrimPrefix(rest, flag)
	}
	return expand(rest, environ(c.cwd))
}

func (s *Shell) env(c *call) string {
	return strings.Join(append(slices.Clone(envVars), "PWD="+c.cwd), "\n")
}

func (s *Shell) printenv(c *call) string {
	ops := c.operands()
	if len(ops) == 0 {
		return s.env(c)
	}
	vars := environ(c.cwd)
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		if v, ok := vars[op]; ok {
			out = append(out, v)
		}
	}
	return strings.Join(out, "\n")
}

func environ(cwd string) map[string]string {
	vars := make(map[string]string, len(envVars)+1)
	for _, kv := range envVars {
		k, v, _ := strings.Cut(kv, "=")
		vars[k] = v
	}
	vars["PWD"] = cwd
	return vars
}

// expand performs shell-style quoting and $VAR / ${VAR} expansion. Single
// quotes are literal; unquoted whitespace collapses to one space.
func expand(s string, vars map[string]string) string {
	var (
		b     strings.Builder
		quote rune
		space bool
	)
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				b.WriteRune(r)
			}
			continue
		case quote == 0 && (r == ' ' || r == '\t'):
			space = true
			continue
		}
		if space {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
		}
		switch {
		case r == '"' && quote == '"':
			quote = 0
		case (r == '"' || r == '\'') && quote == 0:
			quote = r
		case r == '$' && i+1 < len(rs):
			name, n := varName(rs[i+1:])
			if n == 0 {
				b.WriteRune(r)
				continue
			}
			b.WriteString(vars[name])
			i += n
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// varName reads a variable reference after '$' and reports how many runes
// it consumed.
func varName(rs []rune) (string, int) {
	if rs[0] == '{' {
		for j := 1; j < len(rs); j++ {
			if rs[j] == '}' {
				return string(rs[1:j]), j + 1
			}
		}
		return "", 0
	}
	j := 0
	for j < len(rs) && (rs[j] == '_' || rs[j] >= 'a' && rs[j] <= 'z' || rs[j] >= 'A' && rs[j] <= 'Z' || j > 0 && rs[j] >= '0' && rs[j] <= '9') {
		j++
	}
	return string(rs[:j]), j
}
