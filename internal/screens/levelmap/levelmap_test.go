package levelmap

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linuxlearn/internal/identity"
	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/screens/practice"
	"github.com/abhisek/linuxlearn/internal/store"
	"github.com/abhisek/linuxlearn/internal/tutor"
)

func newServices(t *testing.T) *screens.Services {
	t.Helper()
	mem := store.NewMemory()
	return screens.NewServices(mem, identity.NewAdapter(mem, nil), tutor.NewService(nil, tutor.DefaultConfig(), nil), nil)
}

func complete(t *testing.T, svc *screens.Services, ids ...int) {
	t.Helper()
	for _, id := range ids {
		lvl, err := levels.Get(id)
		if err != nil {
			t.Fatalf("levels.Get(%d): %v", id, err)
		}
		if _, err := svc.Progress.CompleteLevel(context.Background(), lvl); err != nil {
			t.Fatalf("CompleteLevel(%d): %v", id, err)
		}
	}
}

func (s *LevelMapScreen) selectedID() int {
	return s.rows[s.cursor].level.ID
}

func TestRowsGroupedByTier(t *testing.T) {
	s := New(newServices(t))

	headers, rows := 0, 0
	for _, r := range s.rows {
		if r.kind == rowTierHeader {
			headers++
		} else {
			rows++
		}
	}
	if headers != 3 {
		t.Errorf("tier headers = %d, want 3", headers)
	}
	if rows != levels.Count() {
		t.Errorf("level rows = %d, want %d", rows, levels.Count())
	}
}

func TestCursorStartsOnNextLevel(t *testing.T) {
	svc := newServices(t)
	complete(t, svc, 1, 2, 3)

	s := New(svc)
	if got := s.selectedID(); got != 4 {
		t.Errorf("cursor on level %d, want 4", got)
	}
}

func TestNavigation(t *testing.T) {
	s := New(newServices(t))
	if s.selectedID() != 1 {
		t.Fatalf("cursor on level %d, want 1", s.selectedID())
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selectedID() != 2 {
		t.Errorf("down: level %d, want 2", s.selectedID())
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.selectedID() != 6 {
		t.Errorf("tab: level %d, want 6", s.selectedID())
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.selectedID() != 1 {
		t.Errorf("shift+tab: level %d, want 1", s.selectedID())
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selectedID() != 1 {
		t.Errorf("up at top: level %d, want 1", s.selectedID())
	}
}

func TestEnterLockedLevel(t *testing.T) {
	s := New(newServices(t))
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("locked level should not open")
	}
	if !strings.Contains(s.notice, "Complete level 1") {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestEnterUnlockedLevel(t *testing.T) {
	s := New(newServices(t))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*practice.PracticeScreen); !ok {
		t.Errorf("pushed %T, want practice screen", msg.Screen)
	}
}

func TestEnterChecksStoredProgress(t *testing.T) {
	svc := newServices(t)
	s := New(svc)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	complete(t, svc, 1)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("level 2 should open once level 1 is stored as complete, notice %q", s.notice)
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestResumeReloadsProgress(t *testing.T) {
	svc := newServices(t)
	s := New(svc)
	complete(t, svc, 1)

	if s.levelState(2) != levels.StateLocked {
		t.Fatal("level 2 should be locked before reload")
	}
	s.Update(router.ResumeMsg{})
	if s.levelState(2) != levels.StateAvailable {
		t.Error("resume should pick up the new completion")
	}
}

func TestView(t *testing.T) {
	view := New(newServices(t)).View(100, 30)
	if !strings.Contains(view, "BEGINNER") {
		t.Error("expected the beginner tier header")
	}
	if !strings.Contains(view, "Basic Navigation") {
		t.Error("expected level 1 in the list")
	}
}
