// Package levels holds the fixed catalogue of fifteen lessons and the
// rules for unlocking them.
package levels

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotFound is returned for level IDs outside the catalogue.
var ErrNotFound = errors.New("level not found")

// catalogue is the package-level level list, set by init() in seed.go.
var catalogue []Level

// Count returns the number of levels.
func Count() int {
	return len(catalogue)
}

// All returns every level in unlock order.
func All() []Level {
	return slices.Clone(catalogue)
}

// Get returns the level with the given id.
func Get(id int) (Level, error) {
	if id < 1 || id > len(catalogue) {
		return Level{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return catalogue[id-1], nil
}

// TotalPoints returns the sum of every level's points.
func TotalPoints() int {
	total := 0
	for _, l := range catalogue {
		total += l.Points
	}
	return total
}

// IsUnlocked reports whether level id may be entered. Level 1 is always
// open; level N requires level N-1 to be completed.
func IsUnlocked(id int, completed map[int]bool) bool {
	if id < 1 || id > len(catalogue) {
		return false
	}
	return id == 1 || completed[id-1]
}

// StateOf combines completion and unlock state for display.
func StateOf(id int, completed map[int]bool) State {
	switch {
	case completed[id]:
		return StateCompleted
	case IsUnlocked(id, completed):
		return StateAvailable
	default:
		return StateLocked
	}
}

// Next returns the first unlocked level that is not completed.
func Next(completed map[int]bool) (Level, bool) {
	for _, l := range catalogue {
		if !completed[l.ID] && IsUnlocked(l.ID, completed) {
			return l, true
		}
	}
	return Level{}, false
}

// AllCompleted reports whether every level is in completed.
func AllCompleted(completed map[int]bool) bool {
	for _, l := range catalogue {
		if !completed[l.ID] {
			return false
		}
	}
	return true
}
