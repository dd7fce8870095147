package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screen"
	"github.com/abhisek/linuxlearn/internal/ui/layout"
	"github.com/abhisek/linuxlearn/internal/ui/theme"
)

// Result describes a finished level visit.
type Result struct {
	Level levels.Level
	// Awarded is false when the level had been completed before.
	Awarded bool
	// Commands and Correct count the lines typed in the practice terminal.
	Commands int
	Correct  int
	// AllCompleted is set once every level is complete.
	AllCompleted bool
}

// SummaryScreen shows what a finished level was worth and offers the next one.
type SummaryScreen struct {
	result Result
	next   func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. next builds the following level's screen and
// may be nil after the last level.
func New(result Result, next func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{result: result, next: next}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Level Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.next == nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next level"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			if s.next != nil {
				return s, router.Replace(s.next())
			}
			return s, router.Pop
		case "esc", "q":
			return s, router.Pop
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		fmt.Sprintf("Level %d complete!", res.Level.ID)))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), res.Level.Title))
	b.WriteString("\n")

	if res.Awarded {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true),
			fmt.Sprintf("★ +%d points", res.Level.Points)))
	} else {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			"Already completed, no new points"))
	}
	b.WriteString("\n")

	stats := fmt.Sprintf("Commands run: %d        Correct: %d", res.Commands, res.Correct)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), stats))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Commands practiced")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Secondary), strings.Join(res.Level.Commands, "  ")))

	if res.AllCompleted {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
			"All levels complete. The final exam is unlocked!"))
	}

	return b.String()
}
