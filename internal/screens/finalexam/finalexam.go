// Package finalexam runs the certification exam behind the Dragon Master
// badge.
package finalexam

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linuxlearn/internal/exam"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screen"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/screens/certificate"
	"github.com/abhisek/linuxlearn/internal/ui/components"
	"github.com/abhisek/linuxlearn/internal/ui/layout"
)

type phase int

const (
	phaseLocked phase = iota
	phaseQuestions
	phaseResults
)

// ExamScreen implements screen.Screen for the final exam.
type ExamScreen struct {
	svc     *screens.Services
	phase   phase
	gate    exam.Gate
	attempt *exam.Attempt
	result  exam.Result

	mc    components.MultiChoice
	input components.TextInput
	name  components.TextInput

	confirmSubmit bool
	confirmQuit   bool
	errMsg        string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.EscapeHandler = (*ExamScreen)(nil)

// New opens the exam, or the locked notice when levels remain.
func New(svc *screens.Services) *ExamScreen {
	s := &ExamScreen{
		svc:   svc,
		input: components.NewTextInput("$ ", "type the command", 120),
		name:  components.NewTextInput("Name: ", "name for the certificate", 60),
	}
	ctx := context.Background()
	g, err := svc.Exam.Gate(ctx)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.gate = g

	a, err := svc.Exam.Start(ctx)
	switch {
	case errors.Is(err, exam.ErrLocked):
		s.phase = phaseLocked
	case err != nil:
		s.errMsg = err.Error()
	default:
		s.attempt = a
		s.phase = phaseQuestions
		s.loadQuestion()
	}
	return s
}

func (s *ExamScreen) Init() tea.Cmd {
	return nil
}

func (s *ExamScreen) Title() string {
	return "Final Exam"
}

// HandlesEscape keeps Esc inside the screen while an attempt is open.
func (s *ExamScreen) HandlesEscape() bool {
	return s.phase == phaseQuestions
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmSubmit || s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Yes"},
			{Key: "N", Description: "No"},
		}
	case s.phase == phaseQuestions:
		return []layout.KeyHint{
			{Key: "Tab/Shift+Tab", Description: "Next/Prev"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Ctrl+S", Description: "Submit exam"},
			{Key: "Esc", Description: "Quit"},
		}
	case s.phase == phaseResults && s.result.Passed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Claim badge"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forward(msg)
	}

	switch s.phase {
	case phaseQuestions:
		return s.handleQuestionKey(kmsg)
	case phaseResults:
		return s.handleResultsKey(kmsg)
	}
	if kmsg.String() == "q" {
		return s, router.Pop
	}
	return s, nil
}

// forward passes non-key messages, such as cursor blinks, to the focused input.
func (s *ExamScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case s.phase == phaseQuestions && s.isCommand():
		s.input, cmd = s.input.Update(msg)
	case s.phase == phaseResults && s.result.Passed:
		s.name, cmd = s.name.Update(msg)
	}
	return s, cmd
}

func (s *ExamScreen) handleQuestionKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, router.Pop
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}
	if s.confirmSubmit {
		switch key {
		case "y", "Y":
			s.confirmSubmit = false
			return s, s.submit()
		case "n", "N", "esc":
			s.confirmSubmit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "tab", "ctrl+n":
		s.move(s.attempt.Next)
		return s, nil
	case "shift+tab", "ctrl+p":
		s.move(s.attempt.Prev)
		return s, nil
	case "ctrl+s":
		s.saveCurrent()
		if s.attempt.AnsweredCount() < s.attempt.Len() {
			s.confirmSubmit = true
			return s, nil
		}
		return s, s.submit()
	}

	if s.isCommand() {
		if key == "enter" {
			s.saveCurrent()
			s.move(s.attempt.Next)
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	before := s.mc.Chosen
	s.mc, _ = s.mc.Update(msg)
	if s.mc.Chosen != before {
		s.saveCurrent()
	}
	return s, nil
}

func (s *ExamScreen) handleResultsKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, router.Pop
	case "enter":
		if !s.result.Passed {
			return s, router.Pop
		}
		return s, s.claim()
	}
	if !s.result.Passed {
		return s, nil
	}
	var cmd tea.Cmd
	s.name, cmd = s.name.Update(msg)
	return s, cmd
}

func (s *ExamScreen) isCommand() bool {
	if s.attempt == nil {
		return false
	}
	_, q := s.attempt.Current()
	_, ok := q.(exam.Command)
	return ok
}

// move saves the current answer, steps with fn, and loads the new question.
func (s *ExamScreen) move(fn func() bool) {
	s.saveCurrent()
	if fn() {
		s.loadQuestion()
	}
}

func (s *ExamScreen) loadQuestion() {
	_, q := s.attempt.Current()
	prev, _ := s.attempt.Answered(q.ID())
	switch q := q.(type) {
	case exam.MultipleChoice:
		chosen := -1
		for i, opt := range q.Options {
			if opt == prev {
				chosen = i
			}
		}
		s.mc = components.NewMultiChoice(q.Prompt(), q.Options, chosen)
		s.input.Blur()
	case exam.Command:
		s.input.SetValue(prev)
		s.input.Focus()
	}
}

// saveCurrent records the visible answer. An empty command box is only
// recorded when it clears an earlier answer.
func (s *ExamScreen) saveCurrent() {
	_, q := s.attempt.Current()
	var value string
	switch q.(type) {
	case exam.MultipleChoice:
		if s.mc.Chosen < 0 {
			return
		}
		value = s.mc.Value()
	case exam.Command:
		value = strings.TrimSpace(s.input.Value())
		if _, had := s.attempt.Answered(q.ID()); value == "" && !had {
			return
		}
	}
	if err := s.attempt.Answer(q.ID(), value); err != nil {
		s.errMsg = err.Error()
	}
}

func (s *ExamScreen) submit() tea.Cmd {
	holder := ""
	if id := s.svc.Identity.Current(); id != nil {
		holder = id.Name
	}
	res, err := s.attempt.Submit(context.Background(), holder)
	if err != nil {
		s.errMsg = err.Error()
		s.svc.Log.Error("submit exam", "error", err)
		return nil
	}
	s.result = res
	s.phase = phaseResults
	s.errMsg = ""
	s.input.Blur()
	if res.Passed {
		if res.Badge != nil && res.Badge.Holder != "" {
			s.name.SetValue(res.Badge.Holder)
		}
		return tea.Batch(screens.ProgressChanged, s.name.Focus())
	}
	return screens.ProgressChanged
}

// claim stores the certificate name and shows the badge.
func (s *ExamScreen) claim() tea.Cmd {
	name := strings.TrimSpace(s.name.Value())
	if name == "" {
		s.errMsg = "Enter the name to print on your certificate."
		return nil
	}
	if _, err := s.svc.Badges.Issue(context.Background(), name); err != nil {
		s.errMsg = err.Error()
		s.svc.Log.Error("issue badge", "error", err)
		return nil
	}
	return router.Replace(certificate.New(s.svc))
}
