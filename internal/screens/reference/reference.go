// Package reference is the browsable command catalogue.
package reference

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/commands"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screen"
	"github.com/abhisek/linuxlearn/internal/ui/layout"
	"github.com/abhisek/linuxlearn/internal/ui/theme"
)

// ReferenceScreen lists every documented command. Enter expands the
// selected entry in place.
type ReferenceScreen struct {
	entries  []commands.Info
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*ReferenceScreen)(nil)
var _ screen.KeyHintProvider = (*ReferenceScreen)(nil)

// New creates a reference screen over the full catalogue.
func New() *ReferenceScreen {
	return &ReferenceScreen{
		entries:  commands.All(),
		expanded: make(map[int]bool),
	}
}

// NewFor creates a reference screen limited to the given commands, in
// the given order.
func NewFor(names []string) *ReferenceScreen {
	return &ReferenceScreen{
		entries:  commands.ForLevel(names),
		expanded: make(map[int]bool),
	}
}

func (s *ReferenceScreen) Init() tea.Cmd {
	return nil
}

func (s *ReferenceScreen) Title() string {
	return "Command Reference"
}

func (s *ReferenceScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReferenceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "q":
		return s, router.Pop
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.entries)-1 {
			s.selected++
		}
	case "enter", "space":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *ReferenceScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No commands documented.")
	}

	lines := []string{""}
	selectedLine := 0
	for i, info := range s.entries {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = theme.Selected
			selectedLine = len(lines)
		}
		name := style.Render(fmt.Sprintf("%s%-8s", prefix, info.Name))
		desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(info.Description)
		lines = append(lines, "  "+name+"  "+desc)
		if s.expanded[i] {
			lines = append(lines, details(info, width)...)
		}
	}

	// Keep the selection on screen when the list overflows.
	if height > 0 && len(lines) > height {
		start := selectedLine - height/2
		if start < 0 {
			start = 0
		}
		if start > len(lines)-height {
			start = len(lines) - height
		}
		lines = lines[start : start+height]
	}
	return strings.Join(lines, "\n")
}

func details(info commands.Info, width int) []string {
	label := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text)
	code := lipgloss.NewStyle().Foreground(theme.Primary)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	wrap := max(width-10, 20)

	var out []string
	add := func(s string) { out = append(out, "      "+s) }

	add(label.Render("Usage: ") + code.Render(info.Usage))
	if info.Why != "" {
		for _, l := range strings.Split(body.Width(wrap).Render(info.Why), "\n") {
			add(l)
		}
	}
	if len(info.Examples) > 0 {
		add(label.Render("Examples"))
		for _, ex := range info.Examples {
			add("  " + code.Render("$ "+ex.Command) + "  " + dim.Render(ex.Explanation))
		}
	}
	if len(info.Options) > 0 {
		add(label.Render("Options"))
		for _, o := range info.Options {
			add("  " + code.Render(fmt.Sprintf("%-6s", o.Flag)) + " " + dim.Render(o.Description))
		}
	}
	out = append(out, "")
	return out
}
