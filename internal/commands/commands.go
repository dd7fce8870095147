// Package commands is the reference catalogue of Linux commands shown
// next to each level's terminal.
package commands

import (
	"slices"
	"strings"
)

// Example is a sample invocation with an explanation.
type Example struct {
	Command     string
	Explanation string
}

// Option documents a single flag.
type Option struct {
	Flag        string
	Description string
}

// Info is the reference entry for one command.
type Info struct {
	Name        string
	Description string
	Usage       string
	Why         string
	Examples    []Example
	Options     []Option
}

var byName map[string]int

func init() {
	byName = make(map[string]int, len(catalogue))
	for i, c := range catalogue {
		if _, dup := byName[c.Name]; dup {
			panic("commands: duplicate entry " + c.Name)
		}
		byName[c.Name] = i
	}
}

// Lookup finds the entry for a command. Only the first word of name is
// used, so "ls -l" finds ls.
func Lookup(name string) (Info, bool) {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return Info{}, false
	}
	i, ok := byName[fields[0]]
	if !ok {
		return Info{}, false
	}
	return catalogue[i], true
}

// All returns every entry sorted by name.
func All() []Info {
	out := slices.Clone(catalogue)
	slices.SortFunc(out, func(a, b Info) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Names returns the sorted command names.
func Names() []string {
	out := make([]string, 0, len(catalogue))
	for _, c := range All() {
		out = append(out, c.Name)
	}
	return out
}

// ForLevel returns the entries for the given command list in order,
// skipping names the catalogue does not document and duplicates.
func ForLevel(names []string) []Info {
	var out []Info
	seen := make(map[string]bool)
	for _, n := range names {
		info, ok := Lookup(n)
		if !ok || seen[info.Name] {
			continue
		}
		seen[info.Name] = true
		out = append(out, info)
	}
	return out
}
