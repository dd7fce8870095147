// Package login signs a learner in by email so their progress is archived
// under their identity.
package login

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/identity"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screen"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/ui/components"
	"github.com/abhisek/linuxlearn/internal/ui/layout"
	"github.com/abhisek/linuxlearn/internal/ui/theme"
)

const (
	fieldEmail = iota
	fieldName
)

// LoginScreen collects an email and an optional display name.
type LoginScreen struct {
	svc    *screens.Services
	fields [2]components.TextInput
	focus  int
	errMsg string
	now    func() time.Time
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen with the email field focused.
func New(svc *screens.Services) *LoginScreen {
	s := &LoginScreen{svc: svc, now: time.Now}
	s.fields[fieldEmail] = components.NewTextInput("Email: ", "you@example.com", 254)
	s.fields[fieldName] = components.NewTextInput("Name:  ", identity.DefaultName, 60)
	s.fields[fieldName].Blur()
	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.fields[fieldEmail].Init()
}

func (s *LoginScreen) Title() string {
	return "Log In"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Log in"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab", "up", "down":
			return s, s.toggleFocus()
		case "enter":
			if s.focus == fieldEmail {
				return s, s.toggleFocus()
			}
			return s, s.submit()
		}
	}
	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *LoginScreen) toggleFocus() tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = 1 - s.focus
	return s.fields[s.focus].Focus()
}

func (s *LoginScreen) submit() tea.Cmd {
	email := strings.TrimSpace(s.fields[fieldEmail].Value())
	if err := identity.ValidateEmail(email); err != nil {
		s.errMsg = "Please enter a valid email address."
		if s.focus != fieldEmail {
			return s.toggleFocus()
		}
		return nil
	}
	id := identity.New(email, s.fields[fieldName].Value(), s.now())
	if err := s.svc.Identity.Login(context.Background(), id); err != nil {
		s.errMsg = err.Error()
		s.svc.Log.Error("login", "error", err)
		return nil
	}
	return tea.Batch(screens.ProgressChanged, router.Pop)
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Welcome back to LinuxLearn"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Your progress is saved under your email on this machine."))
	b.WriteString("\n\n")
	for i := range s.fields {
		style := theme.Unselected
		if i == s.focus {
			style = theme.Selected
		}
		b.WriteString(style.Render(s.fields[i].View()))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}
