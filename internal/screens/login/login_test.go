package login

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linuxlearn/internal/identity"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/store"
	"github.com/abhisek/linuxlearn/internal/tutor"
)

func newScreen(t *testing.T) (*LoginScreen, *screens.Services) {
	t.Helper()
	mem := store.NewMemory()
	adapter := identity.NewAdapter(mem, nil)
	t.Cleanup(adapter.Close)
	svc := screens.NewServices(mem, adapter, tutor.NewService(nil, tutor.DefaultConfig(), nil), nil)
	s := New(svc)
	s.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }
	return s, svc
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func TestLogin(t *testing.T) {
	s, svc := newScreen(t)
	s.fields[fieldEmail].SetValue("ada@example.com")
	s.Update(enter())
	if s.focus != fieldName {
		t.Fatal("enter on email should move to the name field")
	}
	s.fields[fieldName].SetValue("Ada")

	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command after logging in")
	}
	id := svc.Identity.Current()
	if id == nil {
		t.Fatal("expected a signed-in identity")
	}
	if id.Email != "ada@example.com" || id.Name != "Ada" {
		t.Errorf("identity = %+v", id)
	}
}

func TestLogin_DefaultName(t *testing.T) {
	s, svc := newScreen(t)
	s.fields[fieldEmail].SetValue("grace@example.com")
	s.Update(enter())
	s.Update(enter())

	id := svc.Identity.Current()
	if id == nil || id.Name != identity.DefaultName {
		t.Errorf("identity = %+v, want default name", id)
	}
}

func TestLogin_InvalidEmail(t *testing.T) {
	s, svc := newScreen(t)
	s.fields[fieldEmail].SetValue("not-an-email")
	s.Update(enter())

	s.Update(enter())
	if svc.Identity.Current() != nil {
		t.Fatal("invalid email should not sign in")
	}
	if s.errMsg == "" {
		t.Error("expected a validation message")
	}
	if s.focus != fieldEmail {
		t.Error("focus should return to the email field")
	}
}

func TestTabTogglesFocus(t *testing.T) {
	s, _ := newScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focus != fieldName {
		t.Fatal("tab should move to the name field")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focus != fieldEmail {
		t.Fatal("tab should wrap to the email field")
	}
}
