// Package practice is the per-level screen: the tutorial, then the
// simulated terminal where the learner works through the exercises.
package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linuxlearn/internal/grader"
	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screen"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/screens/reference"
	"github.com/abhisek/linuxlearn/internal/screens/summary"
	"github.com/abhisek/linuxlearn/internal/shell"
	"github.com/abhisek/linuxlearn/internal/tutor"
	"github.com/abhisek/linuxlearn/internal/ui/components"
	"github.com/abhisek/linuxlearn/internal/ui/layout"
)

const tutorPollInterval = 200 * time.Millisecond

type phase int

const (
	phaseTutorial phase = iota
	phaseTerminal
)

// PracticeScreen implements screen.Screen for one level.
type PracticeScreen struct {
	svc     *screens.Services
	level   levels.Level
	tracker *grader.Tracker
	phase   phase
	input   components.TextInput

	showHint    bool
	confirmQuit bool
	commands    int
	correct     int

	// misses are the wrong commands on the active exercise, oldest first.
	misses    []string
	lastWrong *tutor.Input

	tutorWaiting bool
	explanation  *tutor.Explanation
	tutorErr     string
	errMsg       string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.EscapeHandler = (*PracticeScreen)(nil)

// New opens level at its tutorial.
func New(svc *screens.Services, level levels.Level) *PracticeScreen {
	done := false
	if state, err := svc.Progress.Load(context.Background()); err == nil {
		done = state.Completed[level.ID]
	} else {
		svc.Log.Warn("load progress", "level", level.ID, "error", err)
	}
	return &PracticeScreen{
		svc:   svc,
		level: level,
		tracker: grader.NewTracker(level, svc.Progress,
			grader.WithShell(svc.Shell),
			grader.PreviouslyCompleted(done),
		),
		input: components.NewTextInput("", "type a command", 200),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return fmt.Sprintf("Level %d: %s", s.level.ID, s.level.Title)
}

// HandlesEscape keeps Esc inside the screen while the terminal is open.
func (s *PracticeScreen) HandlesEscape() bool {
	return s.phase == phaseTerminal
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseTutorial {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start practice"},
			{Key: "R", Description: "Command reference"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave level"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Run"},
		{Key: "Tab", Description: "Hint"},
		{Key: "Ctrl+S", Description: "Show solution"},
	}
	if s.svc.Tutor.Enabled() && s.lastWrong != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+E", Description: "Ask tutor"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Tutorial"}, layout.KeyHint{Key: "Esc", Description: "Leave"})
	return hints
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tutorPollMsg:
		return s.handleTutorPoll()

	case levelDoneMsg:
		return s, tea.Batch(screens.ProgressChanged, router.Replace(s.summaryScreen(msg.Awarded)))

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseTerminal {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.phase == phaseTutorial {
		switch key {
		case "enter":
			s.phase = phaseTerminal
			return s, s.input.Focus()
		case "r":
			return s, router.Push(reference.NewFor(s.level.Commands))
		case "esc", "q":
			return s, router.Pop
		}
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, router.Pop
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		if s.commands == 0 {
			return s, router.Pop
		}
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submit()
	case "tab":
		s.showHint = !s.showHint
		return s, nil
	case "ctrl+s":
		return s.useSolution()
	case "ctrl+e":
		return s.askTutor()
	case "ctrl+t":
		s.phase = phaseTutorial
		s.input.Blur()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	line := strings.TrimSpace(s.input.Value())
	s.input.Reset()
	if line == "" {
		return s, nil
	}
	idx, ex := s.tracker.Current()
	a, err := s.tracker.Submit(context.Background(), line)
	if err != nil {
		s.errMsg = err.Error()
		s.svc.Log.Error("save level completion", "level", s.level.ID, "error", err)
		return s, nil
	}
	if strings.EqualFold(line, "clear") {
		return s, nil
	}

	s.errMsg = ""
	s.commands++
	if !a.Correct {
		s.lastWrong = &tutor.Input{
			Level:     s.level,
			Exercise:  ex,
			Submitted: line,
			Output:    a.Output,
			Cwd:       s.tracker.Cwd(),
			Previous:  append([]string(nil), s.misses...),
		}
		s.misses = append(s.misses, line)
		return s, nil
	}
	s.correct++
	return s.afterCorrect(idx, a)
}

func (s *PracticeScreen) useSolution() (screen.Screen, tea.Cmd) {
	idx, _ := s.tracker.Current()
	a, err := s.tracker.UseSolution(context.Background())
	if err != nil {
		s.errMsg = err.Error()
		s.svc.Log.Error("save level completion", "level", s.level.ID, "error", err)
		return s, nil
	}
	s.commands++
	return s.afterCorrect(idx, a)
}

func (s *PracticeScreen) afterCorrect(idx int, a grader.Attempt) (screen.Screen, tea.Cmd) {
	if !a.ExerciseCompleted {
		return s, nil
	}
	s.svc.Log.Debug("exercise solved", "level", s.level.ID, "exercise", idx)
	s.resetExercise()
	if s.tracker.AllCompleted() {
		awarded := a.Awarded
		return s, func() tea.Msg { return levelDoneMsg{Awarded: awarded} }
	}
	return s, nil
}

// resetExercise clears the per-exercise helpers after moving on.
func (s *PracticeScreen) resetExercise() {
	s.showHint = false
	s.misses = nil
	s.lastWrong = nil
	s.explanation = nil
	s.tutorErr = ""
}

func (s *PracticeScreen) askTutor() (screen.Screen, tea.Cmd) {
	if !s.svc.Tutor.Enabled() {
		s.tutorErr = tutor.ErrDisabled.Error()
		return s, nil
	}
	if s.lastWrong == nil || s.tutorWaiting {
		return s, nil
	}
	s.svc.Tutor.RequestExplanation(context.Background(), *s.lastWrong)
	s.tutorWaiting = true
	s.explanation = nil
	s.tutorErr = ""
	return s, pollTutor()
}

func (s *PracticeScreen) handleTutorPoll() (screen.Screen, tea.Cmd) {
	if !s.tutorWaiting {
		return s, nil
	}
	res, ok := s.svc.Tutor.Consume()
	if !ok {
		return s, pollTutor()
	}
	s.tutorWaiting = false
	if res.Err != nil {
		s.tutorErr = tutorMessage(res.Err)
		return s, nil
	}
	s.explanation = res.Explanation
	return s, nil
}

func tutorMessage(err error) string {
	if errors.Is(err, tutor.ErrDisabled) {
		return err.Error()
	}
	return "The tutor could not answer right now. Try the hint instead."
}

func pollTutor() tea.Cmd {
	return tea.Tick(tutorPollInterval, func(t time.Time) tea.Msg {
		return tutorPollMsg(t)
	})
}

func (s *PracticeScreen) summaryScreen(awarded bool) screen.Screen {
	res := summary.Result{
		Level:    s.level,
		Awarded:  awarded,
		Commands: s.commands,
		Correct:  s.correct,
	}
	if state, err := s.svc.Progress.Load(context.Background()); err == nil {
		res.AllCompleted = levels.AllCompleted(state.Completed)
	}
	var next func() screen.Screen
	if lvl, err := levels.Get(s.level.ID + 1); err == nil {
		svc := s.svc
		next = func() screen.Screen { return New(svc, lvl) }
	}
	return summary.New(res, next)
}

// promptPath shows the home directory as ~.
func promptPath(cwd string) string {
	switch {
	case cwd == shell.Home:
		return "~"
	case strings.HasPrefix(cwd, shell.Home+"/"):
		return "~" + strings.TrimPrefix(cwd, shell.Home)
	}
	return cwd
}
