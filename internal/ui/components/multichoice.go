package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Chosen is -1 until the learner
// picks an option; picking again changes the choice.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
	Chosen   int
}

// NewMultiChoice creates a selector with chosen preselected, or -1 for none.
func NewMultiChoice(question string, options []string, chosen int) MultiChoice {
	selected := chosen
	if selected < 0 || selected >= len(options) {
		selected = 0
		chosen = -1
	}
	return MultiChoice{
		Question: question,
		Options:  options,
		Selected: selected,
		Chosen:   chosen,
	}
}

// Update handles arrow navigation, enter, and A-D / 1-4 shortcuts.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		m.Chosen = m.Selected
	default:
		if i, ok := shortcutIndex(key); ok && i < len(m.Options) {
			m.Selected = i
			m.Chosen = i
		}
	}

	return m, nil
}

func shortcutIndex(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	switch c := key[0]; {
	case c >= 'a' && c <= 'd':
		return int(c - 'a'), true
	case c >= '1' && c <= '4':
		return int(c - '1'), true
	}
	return 0, false
}

// Value returns the chosen option text, or "" if nothing is chosen.
func (m MultiChoice) Value() string {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen]
}

// View renders the question and options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := fmt.Sprint(i + 1)
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		mark := "( )"
		if i == m.Chosen {
			mark = "(•)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		switch {
		case i == m.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
