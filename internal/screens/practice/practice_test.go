package practice

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linuxlearn/internal/identity"
	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/llm"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/screens/summary"
	"github.com/abhisek/linuxlearn/internal/store"
	"github.com/abhisek/linuxlearn/internal/tutor"
)

func newServices(t *testing.T, provider llm.Provider) *screens.Services {
	t.Helper()
	mem := store.NewMemory()
	return screens.NewServices(mem, identity.NewAdapter(mem, nil), tutor.NewService(provider, tutor.DefaultConfig(), nil), nil)
}

func levelOne(t *testing.T) levels.Level {
	t.Helper()
	lvl, err := levels.Get(1)
	if err != nil {
		t.Fatalf("levels.Get(1): %v", err)
	}
	return lvl
}

func enterKey() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func ctrl(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl} }

func openTerminal(t *testing.T, s *PracticeScreen) {
	t.Helper()
	s.Update(enterKey())
	if s.phase != phaseTerminal {
		t.Fatal("enter on the tutorial should open the terminal")
	}
}

func run(s *PracticeScreen, line string) tea.Cmd {
	s.input.SetValue(line)
	_, cmd := s.Update(enterKey())
	return cmd
}

func TestTutorialThenTerminal(t *testing.T) {
	s := New(newServices(t, nil), levelOne(t))
	if s.HandlesEscape() {
		t.Error("tutorial should let the app handle Esc")
	}
	view := s.View(100, 30)
	if view == "" {
		t.Fatal("expected tutorial view")
	}

	openTerminal(t, s)
	if !s.HandlesEscape() {
		t.Error("terminal should handle Esc itself")
	}
	if got := s.Title(); got != "Level 1: Basic Navigation" {
		t.Errorf("Title = %q", got)
	}
}

func TestSubmit_WrongThenRight(t *testing.T) {
	s := New(newServices(t, nil), levelOne(t))
	openTerminal(t, s)

	run(s, "ls")
	if s.lastWrong == nil {
		t.Fatal("a wrong command should be recorded for the tutor")
	}
	if s.lastWrong.Submitted != "ls" || len(s.lastWrong.Previous) != 0 {
		t.Errorf("lastWrong = %+v", s.lastWrong)
	}
	if idx, _ := s.tracker.Current(); idx != 0 {
		t.Errorf("exercise index = %d, want 0", idx)
	}

	run(s, "whoami")
	if len(s.lastWrong.Previous) != 1 {
		t.Errorf("previous misses = %v, want [ls]", s.lastWrong.Previous)
	}

	run(s, "pwd")
	if idx, _ := s.tracker.Current(); idx != 1 {
		t.Errorf("exercise index = %d, want 1", idx)
	}
	if s.lastWrong != nil || len(s.misses) != 0 {
		t.Error("solving an exercise should reset the tutor input")
	}
	if s.commands != 3 || s.correct != 1 {
		t.Errorf("commands=%d correct=%d, want 3 and 1", s.commands, s.correct)
	}
	if s.input.Value() != "" {
		t.Error("input should be cleared after running a command")
	}
}

func TestHintToggle(t *testing.T) {
	s := New(newServices(t, nil), levelOne(t))
	openTerminal(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !s.showHint {
		t.Fatal("tab should show the hint")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.showHint {
		t.Fatal("tab again should hide the hint")
	}
}

func TestCompleteLevel(t *testing.T) {
	svc := newServices(t, nil)
	lvl := levelOne(t)
	s := New(svc, lvl)
	openTerminal(t, s)

	var cmd tea.Cmd
	for _, ex := range lvl.Exercises {
		cmd = run(s, ex.ExpectedCommand)
	}
	if cmd == nil {
		t.Fatal("finishing the last exercise should produce a command")
	}
	done, ok := cmd().(levelDoneMsg)
	if !ok {
		t.Fatalf("expected levelDoneMsg, got %T", cmd())
	}
	if !done.Awarded {
		t.Error("first completion should award points")
	}

	state, err := svc.Progress.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !state.Completed[1] || state.Points != lvl.Points {
		t.Errorf("state = %+v, want level 1 completed with %d points", state, lvl.Points)
	}

	_, cmd = s.Update(done)
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected BatchMsg, got %T", cmd())
	}
	var replaced bool
	for _, c := range batch {
		if msg, ok := c().(router.ReplaceScreenMsg); ok {
			_, replaced = msg.Screen.(*summary.SummaryScreen)
		}
	}
	if !replaced {
		t.Error("expected the summary screen to replace practice")
	}
}

func TestUseSolution(t *testing.T) {
	s := New(newServices(t, nil), levelOne(t))
	openTerminal(t, s)

	s.Update(ctrl('s'))
	if idx, _ := s.tracker.Current(); idx != 1 {
		t.Errorf("exercise index = %d, want 1", idx)
	}
	h := s.tracker.History()
	if len(h) != 1 || h[0].Command != "pwd" {
		t.Errorf("history = %+v, want the solution run", h)
	}
}

func TestAskTutor(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]string{
		"explanation":       "ls lists files; it does not print where you are.",
		"tip":               "Think print working directory.",
		"suggested_command": "",
	}))
	s := New(newServices(t, mock), levelOne(t))
	openTerminal(t, s)

	run(s, "ls")
	_, cmd := s.Update(ctrl('e'))
	if cmd == nil || !s.tutorWaiting {
		t.Fatal("ctrl+e should start a tutor request")
	}

	deadline := time.Now().Add(5 * time.Second)
	for s.tutorWaiting && time.Now().Before(deadline) {
		s.Update(tutorPollMsg(time.Now()))
		time.Sleep(5 * time.Millisecond)
	}
	if s.explanation == nil {
		t.Fatalf("expected an explanation, err=%q", s.tutorErr)
	}
	if s.explanation.Tip != "Think print working directory." {
		t.Errorf("tip = %q", s.explanation.Tip)
	}
}

func TestAskTutor_Disabled(t *testing.T) {
	s := New(newServices(t, nil), levelOne(t))
	openTerminal(t, s)
	run(s, "ls")

	_, cmd := s.Update(ctrl('e'))
	if cmd != nil {
		t.Error("disabled tutor should not poll")
	}
	if s.tutorErr == "" {
		t.Error("expected a disabled message")
	}
}

func TestEscapeConfirm(t *testing.T) {
	s := New(newServices(t, nil), levelOne(t))
	openTerminal(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc with no commands run should leave straight away")
	}

	run(s, "ls")
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil || !s.confirmQuit {
		t.Fatal("esc after running commands should ask first")
	}
	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.confirmQuit {
		t.Fatal("n should dismiss the confirmation")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd = s.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatal("y should leave the level")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestPromptPath(t *testing.T) {
	tests := []struct {
		cwd, want string
	}{
		{"/home/user", "~"},
		{"/home/user/documents", "~/documents"},
		{"/home/username", "/home/username"},
		{"/etc", "/etc"},
	}
	for _, tt := range tests {
		if got := promptPath(tt.cwd); got != tt.want {
			t.Errorf("promptPath(%q) = %q, want %q", tt.cwd, got, tt.want)
		}
	}
}

func TestTutorialOpensReference(t *testing.T) {
	s := New(newServices(t, nil), levelOne(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want router.PushScreenMsg", cmd())
	}
	if push.Screen.Title() != "Command Reference" {
		t.Errorf("pushed %q, want the command reference", push.Screen.Title())
	}
}
