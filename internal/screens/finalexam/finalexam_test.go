package finalexam

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linuxlearn/internal/exam"
	"github.com/abhisek/linuxlearn/internal/identity"
	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/screens/certificate"
	"github.com/abhisek/linuxlearn/internal/store"
	"github.com/abhisek/linuxlearn/internal/tutor"
)

func newServices(t *testing.T, completeAll bool) *screens.Services {
	t.Helper()
	mem := store.NewMemory()
	svc := screens.NewServices(mem, identity.NewAdapter(mem, nil), tutor.NewService(nil, tutor.DefaultConfig(), nil), nil)
	svc.ExportDir = t.TempDir()
	if completeAll {
		for _, l := range levels.All() {
			if _, err := svc.Progress.CompleteLevel(context.Background(), l); err != nil {
				t.Fatalf("CompleteLevel(%d): %v", l.ID, err)
			}
		}
	}
	return svc
}

func key(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func ctrlS() tea.KeyPressMsg { return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl} }

// answerAll walks the questions and answers each one, correctly when right is set.
func answerAll(t *testing.T, s *ExamScreen, right bool) {
	t.Helper()
	for i := 0; i < s.attempt.Len(); i++ {
		_, q := s.attempt.Current()
		switch q := q.(type) {
		case exam.MultipleChoice:
			choice := 0
			for j, opt := range q.Options {
				if (opt == q.Answer) == right {
					choice = j
					break
				}
			}
			s.Update(key(string(rune('a' + choice))))
			s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		case exam.Command:
			answer := "echo nope"
			if right {
				answer = q.Answer
			}
			s.input.SetValue(answer)
			s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		}
	}
}

func TestLocked(t *testing.T) {
	s := New(newServices(t, false))
	if s.phase != phaseLocked {
		t.Fatalf("phase = %d, want locked", s.phase)
	}
	if s.gate.String() != "0/15" {
		t.Errorf("gate = %s, want 0/15", s.gate)
	}
	if s.HandlesEscape() {
		t.Error("locked screen should let the app handle Esc")
	}
}

func TestAnswersKeptAcrossNavigation(t *testing.T) {
	s := New(newServices(t, true))
	if s.phase != phaseQuestions {
		t.Fatalf("phase = %d, want questions", s.phase)
	}

	s.Update(key("b"))
	if got, _ := s.attempt.Answered(1); got != "pwd" {
		t.Fatalf("answer 1 = %q, want pwd", got)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.input.SetValue("ls -la")
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if got, _ := s.attempt.Answered(2); got != "ls -la" {
		t.Errorf("answer 2 = %q, want ls -la", got)
	}
	if s.mc.Chosen != 1 {
		t.Errorf("returning to question 1 should restore the choice, got %d", s.mc.Chosen)
	}
}

func TestSubmitUnansweredAsksFirst(t *testing.T) {
	s := New(newServices(t, true))
	s.Update(ctrlS())
	if !s.confirmSubmit {
		t.Fatal("submitting with blanks should ask first")
	}
	s.Update(key("n"))
	if s.confirmSubmit || s.phase != phaseQuestions {
		t.Fatal("n should return to the questions")
	}
	s.Update(ctrlS())
	s.Update(key("y"))
	if s.phase != phaseResults {
		t.Fatal("y should submit")
	}
	if s.result.Score != 0 || s.result.Passed {
		t.Errorf("result = %+v, want 0 and failed", s.result)
	}
}

func TestFailedExam(t *testing.T) {
	svc := newServices(t, true)
	s := New(svc)
	answerAll(t, s, false)
	s.Update(ctrlS())

	if s.phase != phaseResults || s.result.Passed {
		t.Fatalf("phase=%d passed=%v, want failed results", s.phase, s.result.Passed)
	}
	st, err := svc.Exam.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !st.Completed {
		t.Error("a failed attempt is still recorded as completed")
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter after failing should go back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestPassedExamClaimsBadge(t *testing.T) {
	svc := newServices(t, true)
	s := New(svc)
	answerAll(t, s, true)
	s.Update(ctrlS())

	if !s.result.Passed || s.result.Score != 100 {
		t.Fatalf("result = %+v, want 100 and passed", s.result)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || s.errMsg == "" {
		t.Fatal("claiming without a name should ask for one")
	}

	s.name.SetValue("Ada")
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected the badge screen")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*certificate.CertificateScreen); !ok {
		t.Errorf("replaced with %T", msg.Screen)
	}

	rec, err := svc.Badges.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !rec.Earned || rec.Holder != "Ada" {
		t.Errorf("record = %+v", rec)
	}
}

func TestEscapeConfirm(t *testing.T) {
	s := New(newServices(t, true))
	if !s.HandlesEscape() {
		t.Fatal("open attempt should handle Esc")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.confirmQuit {
		t.Fatal("esc should ask before quitting")
	}
	_, cmd := s.Update(key("y"))
	if cmd == nil {
		t.Fatal("y should leave the exam")
	}
}
