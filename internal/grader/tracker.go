package grader

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/shell"
)

// LevelCompleter records a finished level.
type LevelCompleter interface {
	CompleteLevel(ctx context.Context, level levels.Level) (awarded bool, err error)
}

// Entry is one line of terminal history.
type Entry struct {
	Command string
	Output  string
	Correct bool
}

// Attempt is the outcome of one submission.
type Attempt struct {
	Entry

	// ExerciseCompleted is set when this attempt completed the active
	// exercise for the first time.
	ExerciseCompleted bool

	// LevelCompleted is set when this attempt finished the level.
	LevelCompleted bool

	// Awarded is set when the completer granted the level's points.
	Awarded bool
}

// Tracker holds the transient exercise state for one visit to a level.
type Tracker struct {
	level     levels.Level
	completer LevelCompleter
	sh        *shell.Shell

	current        int
	done           []bool
	cwd            string
	history        []Entry
	finished       bool
	previouslyDone bool
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithShell runs commands on sh instead of the default shell.
func WithShell(sh *shell.Shell) TrackerOption {
	return func(t *Tracker) { t.sh = sh }
}

// PreviouslyCompleted marks the level as already finished, so solving
// the exercises again does not signal completion.
func PreviouslyCompleted(done bool) TrackerOption {
	return func(t *Tracker) { t.previouslyDone = done }
}

// NewTracker starts a level at its first exercise in the home directory.
func NewTracker(level levels.Level, completer LevelCompleter, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		level:     level,
		completer: completer,
		sh:        shell.New(),
		done:      make([]bool, len(level.Exercises)),
		cwd:       shell.Home,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Level returns the level being practised.
func (t *Tracker) Level() levels.Level { return t.level }

// Current returns the active exercise index and exercise.
func (t *Tracker) Current() (int, levels.Exercise) {
	return t.current, t.level.Exercises[t.current]
}

// Completed returns per-exercise completion flags.
func (t *Tracker) Completed() []bool { return slices.Clone(t.done) }

// AllCompleted reports whether every exercise has been solved.
func (t *Tracker) AllCompleted() bool { return !slices.Contains(t.done, false) }

// Cwd returns the simulated working directory.
func (t *Tracker) Cwd() string { return t.cwd }

// History returns the terminal history.
func (t *Tracker) History() []Entry { return slices.Clone(t.history) }

// Submit runs line in the shell and grades it against the active
// exercise. Blank lines are ignored; "clear" empties the history.
func (t *Tracker) Submit(ctx context.Context, line string) (Attempt, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Attempt{}, nil
	}
	if strings.EqualFold(line, "clear") {
		t.history = nil
		return Attempt{Entry: Entry{Command: line}}, nil
	}
	_, ex := t.Current()
	a := Attempt{Entry: t.run(line, Grade(line, ex.ExpectedCommand))}
	if !a.Correct {
		return a, nil
	}
	return t.advance(ctx, a)
}

// UseSolution runs the active exercise's expected command and completes
// the exercise without grading.
func (t *Tracker) UseSolution(ctx context.Context) (Attempt, error) {
	_, ex := t.Current()
	return t.advance(ctx, Attempt{Entry: t.run(ex.ExpectedCommand, true)})
}

func (t *Tracker) run(line string, correct bool) Entry {
	out, cwd := t.sh.Execute(line, t.cwd)
	t.cwd = cwd
	e := Entry{Command: line, Output: out, Correct: correct}
	t.history = append(t.history, e)
	return e
}

func (t *Tracker) advance(ctx context.Context, a Attempt) (Attempt, error) {
	if t.done[t.current] {
		return a, nil
	}
	t.done[t.current] = true
	a.ExerciseCompleted = true

	if t.current < len(t.done)-1 {
		t.current++
		return a, nil
	}
	if !t.AllCompleted() || t.previouslyDone || t.finished {
		return a, nil
	}
	t.finished = true
	a.LevelCompleted = true
	if t.completer == nil {
		return a, nil
	}
	awarded, err := t.completer.CompleteLevel(ctx, t.level)
	if err != nil {
		return a, fmt.Errorf("complete level %d: %w", t.level.ID, err)
	}
	a.Awarded = awarded
	return a, nil
}
