// Package grader decides whether a submitted command solves an exercise
// and tracks progress through a level's exercises.
package grader

import "strings"

// Grade reports whether submitted is an acceptable answer for expected.
// Matching is case-insensitive and generous: the submission may contain
// the expected command, and for piped expectations only the first stage
// must appear.
func Grade(submitted, expected string) bool {
	sub := strings.ToLower(strings.TrimSpace(submitted))
	exp := strings.ToLower(strings.TrimSpace(expected))
	if sub == "" || exp == "" {
		return false
	}
	if sub == exp || strings.Contains(sub, exp) {
		return true
	}
	if first, _, piped := strings.Cut(exp, "|"); piped {
		if first = strings.TrimSpace(first); first != "" {
			return strings.Contains(sub, first)
		}
	}
	return false
}
