// Package progress tracks earned points and completed levels in the
// progress store.
package progress

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/logger"
	"github.com/abhisek/linuxlearn/internal/store"
)

// State is the learner's level progress.
type State struct {
	Completed map[int]bool
	Points    int
}

// CompletedIDs returns the completed level IDs in ascending order.
func (s State) CompletedIDs() []int {
	return slices.Sorted(maps.Keys(s.Completed))
}

// CompletedCount returns how many catalogue levels are complete.
func (s State) CompletedCount() int {
	n := 0
	for _, l := range levels.All() {
		if s.Completed[l.ID] {
			n++
		}
	}
	return n
}

// Unlocked reports whether level id is open in state.
func Unlocked(state State, id int) bool {
	return levels.IsUnlocked(id, state.Completed)
}

// Service reads and writes progress keys.
type Service struct {
	store store.Store
	log   *logger.Logger
}

// NewService creates a Service. A nil logger discards output.
func NewService(s store.Store, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{store: s, log: log}
}

// Load reads the current state. Malformed values are treated as absent.
func (s *Service) Load(ctx context.Context) (State, error) {
	state := State{Completed: make(map[int]bool)}

	points, _, err := store.GetInt(ctx, s.store, store.KeyUserPoints)
	switch {
	case errors.Is(err, store.ErrMalformed):
		s.log.Warn("ignoring malformed points", "error", err)
	case err != nil:
		return State{}, fmt.Errorf("load points: %w", err)
	default:
		state.Points = points
	}

	var ids []int
	_, err = store.GetJSON(ctx, s.store, store.KeyCompletedLevels, &ids)
	switch {
	case errors.Is(err, store.ErrMalformed):
		s.log.Warn("ignoring malformed completed levels", "error", err)
	case err != nil:
		return State{}, fmt.Errorf("load completed levels: %w", err)
	default:
		for _, id := range ids {
			state.Completed[id] = true
		}
	}
	return state, nil
}

// CompleteLevel marks level complete and awards its points. Repeat
// completions change nothing and report awarded=false.
func (s *Service) CompleteLevel(ctx context.Context, level levels.Level) (awarded bool, err error) {
	state, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	if state.Completed[level.ID] {
		return false, nil
	}
	state.Completed[level.ID] = true
	state.Points += level.Points

	if err := store.SetInt(ctx, s.store, store.KeyUserPoints, state.Points); err != nil {
		return false, fmt.Errorf("save points: %w", err)
	}
	if err := store.SetJSON(ctx, s.store, store.KeyCompletedLevels, state.CompletedIDs()); err != nil {
		return false, fmt.Errorf("save completed levels: %w", err)
	}
	s.log.Info("level completed", "level", level.ID, "points", level.Points, "total", state.Points)
	return true, nil
}

// IsUnlocked reports whether level id may be entered.
func (s *Service) IsUnlocked(ctx context.Context, id int) (bool, error) {
	state, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	return Unlocked(state, id), nil
}

// Reset clears every active progress key, including exam and badge state.
func (s *Service) Reset(ctx context.Context) error {
	for _, k := range store.ActiveProgressKeys() {
		if err := s.store.Remove(ctx, k); err != nil {
			return fmt.Errorf("reset %s: %w", k, err)
		}
	}
	s.log.Info("progress reset")
	return nil
}
