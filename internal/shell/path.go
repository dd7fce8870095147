package shell

import (
	"path"
	"strings"
)

// resolve turns a user-supplied target into an absolute, cleaned path.
// An empty target or "~" means Home.
func resolve(cwd, target string) string {
	switch {
	case target == "" || target == "~":
		return Home
	case strings.HasPrefix(target, "~/"):
		return path.Join(Home, target[2:])
	case strings.HasPrefix(target, "/"):
		return path.Clean(target)
	default:
		return path.Join(cwd, target)
	}
}

// splitArgs splits a command line into words, honoring single and double
// quotes. Quote characters are kept so callers can decide on expansion.
func splitArgs(line string) []string {
	var (
		out   []string
		cur   strings.Builder
		quote rune
		inTok bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			cur.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
			inTok = true
			cur.WriteRune(r)
		case r == ' ' || r == '\t':
			if inTok {
				out = append(out, cur.String())
				cur.Reset()
				inTok = false
			}
		default:
			inTok = true
			cur.WriteRune(r)
		}
	}
	if inTok {
		out = append(out, cur.String())
	}
	return out
}

// unquote strips one layer of matching quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
