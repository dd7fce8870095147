package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linuxlearn/internal/identity"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/screens/reference"
	"github.com/abhisek/linuxlearn/internal/store"
	"github.com/abhisek/linuxlearn/internal/tutor"
)

func newModel(t *testing.T) AppModel {
	t.Helper()
	mem := store.NewMemory()
	adapter := identity.NewAdapter(mem, nil)
	t.Cleanup(adapter.Close)
	svc := screens.NewServices(mem, adapter, tutor.NewService(nil, tutor.DefaultConfig(), nil), nil)
	return newAppModel(svc)
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestStartsOnWelcome(t *testing.T) {
	m := newModel(t)
	if m.router.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", m.router.Depth())
	}
	if m.Init() == nil {
		t.Error("expected the welcome animation to start")
	}
	if m.stats.Total == 0 {
		t.Error("expected header stats to be loaded")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newModel(t)
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
	}
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := newModel(t)
	m, _ = update(m, router.PushScreenMsg{Screen: reference.New()})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("cmd() = %T, want router.PopScreenMsg", cmd())
	}
}

func TestEscAtRootIgnored(t *testing.T) {
	m := newModel(t)
	m, _ = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}
