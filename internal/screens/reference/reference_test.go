package reference

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linuxlearn/internal/commands"
	"github.com/abhisek/linuxlearn/internal/router"
)

func press(s *ReferenceScreen, k tea.KeyPressMsg) tea.Cmd {
	_, cmd := s.Update(k)
	return cmd
}

func TestListsWholeCatalogue(t *testing.T) {
	s := New()
	if len(s.entries) != len(commands.All()) {
		t.Fatalf("entries = %d, want %d", len(s.entries), len(commands.All()))
	}
	view := s.View(100, 0)
	for _, name := range commands.Names() {
		if !strings.Contains(view, name) {
			t.Errorf("view missing %q", name)
		}
	}
}

func TestEnterTogglesDetails(t *testing.T) {
	s := NewFor([]string{"pwd", "ls"})
	if strings.Contains(s.View(100, 0), "Usage:") {
		t.Fatal("details shown before expanding")
	}

	press(s, tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(100, 0)
	if !strings.Contains(view, "Usage:") || !strings.Contains(view, "pwd [OPTION]") {
		t.Errorf("expanded view missing usage:\n%s", view)
	}

	press(s, tea.KeyPressMsg{Code: tea.KeyEnter})
	if strings.Contains(s.View(100, 0), "Usage:") {
		t.Error("details still shown after collapsing")
	}
}

func TestNavigationClamps(t *testing.T) {
	s := NewFor([]string{"pwd", "ls"})
	press(s, tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("selected = %d after up at top, want 0", s.selected)
	}
	press(s, tea.KeyPressMsg{Code: tea.KeyDown})
	press(s, tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d after down past end, want 1", s.selected)
	}
}

func TestForLevelSkipsUnknown(t *testing.T) {
	s := NewFor([]string{"ls -l", "nosuchcmd", "ls"})
	if len(s.entries) != 1 || s.entries[0].Name != "ls" {
		t.Errorf("entries = %+v, want just ls", s.entries)
	}
}

func TestQuitPops(t *testing.T) {
	s := New()
	cmd := press(s, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("cmd() = %T, want router.PopScreenMsg", cmd())
	}
}
