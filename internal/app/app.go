// Package app is the root Bubble Tea model: the screen router with the
// shared header and footer around it.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screen"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/screens/home"
	"github.com/abhisek/linuxlearn/internal/screens/welcome"
	"github.com/abhisek/linuxlearn/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	svc    *screens.Services
	stats  layout.Stats
	width  int
	height int
}

// newAppModel creates an AppModel that opens on the welcome screen.
func newAppModel(svc *screens.Services) AppModel {
	start := welcome.New(func() screen.Screen { return home.New(svc) })
	return AppModel{
		router: router.New(start),
		svc:    svc,
		stats:  svc.Stats(context.Background()),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screens.ProgressChangedMsg, router.ResumeMsg:
		m.stats = m.svc.Stats(context.Background())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 && !handlesEscape(m.router.Active()) {
				return m, router.Pop
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// handlesEscape reports whether s wants to see Esc itself.
func handlesEscape(s screen.Screen) bool {
	h, ok := s.(screen.EscapeHandler)
	return ok && h.HandlesEscape()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, svc *screens.Services) error {
	p := tea.NewProgram(newAppModel(svc), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
