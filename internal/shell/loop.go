package shell

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var braceRange = regexp.MustCompile(`^\{(-?\d+)\.\.(-?\d+)\}$`)

// maxLoopItems bounds one loop's item list. Loops run inside the UI update.
const maxLoopItems = 1000

// loop runs body once per item, substituting $name.
func (s *Shell) loop(name, items, body, cwd string) (string, string) {
	list, ok := expandItems(items)
	if !ok {
		return fmt.Sprintf("bash: %s: too many loop items (limit %d)", items, maxLoopItems), cwd
	}
	var outs []string
	for _, item := range list {
		line := strings.ReplaceAll(body, "${"+name+"}", item)
		line = strings.ReplaceAll(line, "$"+name, item)
		var out string
		out, cwd = s.run(line, cwd)
		if out != "" {
			outs = append(outs, out)
		}
	}
	return strings.Join(outs, "\n"), cwd
}

// expandItems splits a loop's word list, expanding {a..b} ranges. It
// reports false once the list would exceed maxLoopItems.
func expandItems(items string) ([]string, bool) {
	var out []string
	for _, w := range splitArgs(items) {
		m := braceRange.FindStringSubmatch(w)
		if m == nil {
			out = append(out, unquote(w))
			if len(out) > maxLoopItems {
				return nil, false
			}
			continue
		}
		from, err1 := strconv.Atoi(m[1])
		to, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return nil, false
		}
		step := 1
		if from > to {
			step = -1
		}
		if span := (to-from)*step + 1; span < 0 || span > maxLoopItems-len(out) {
			return nil, false
		}
		for i := from; ; i += step {
			out = append(out, strconv.Itoa(i))
			if i == to {
				break
			}
		}
	}
	return out, true
}

// cond evaluates [ -f p ], [ -d p ] or [ -e p ] against the tree.
func (s *Shell) cond(test, target, then, otherwise, cwd string) (string, string) {
	n, ok := Lookup(resolve(cwd, unquote(target)))
	var hit bool
	switch test {
	case "-f":
		hit = ok && !n.IsDir()
	case "-d":
		hit = ok && n.IsDir()
	default:
		hit = ok
	}
	switch {
	case hit:
		return s.run(then, cwd)
	case otherwise != "":
		return s.run(otherwise, cwd)
	}
	return "", cwd
}
