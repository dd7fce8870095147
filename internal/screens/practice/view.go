package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.phase == phaseTutorial {
		return s.renderTutorial(width, height)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	return s.renderTerminalView(width, height)
}

func (s *PracticeScreen) renderTutorial(width, height int) string {
	t := s.level.Tutorial
	cw := min(width-4, 90)
	wrap := lipgloss.NewStyle().Width(cw)

	var b strings.Builder
	b.WriteString(theme.Title.Render(t.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %s · %d pts · %s", s.level.Tier(), s.level.Description, s.level.Points, s.level.EstimatedTime)))
	b.WriteString("\n\n")
	b.WriteString(wrap.Foreground(theme.Text).Render(t.Content))
	b.WriteString("\n\n")

	if t.Why != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Why it matters"))
		b.WriteString("\n")
		b.WriteString(wrap.Foreground(theme.Text).Render(t.Why))
		b.WriteString("\n\n")
	}

	if len(t.Examples) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Examples"))
		b.WriteString("\n")
		for _, ex := range t.Examples {
			b.WriteString(theme.Prompt.Render("  $ " + ex.Command))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + ex.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Commands: " + strings.Join(s.level.Commands, ", ")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Press Enter to open the practice terminal"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (s *PracticeScreen) renderTerminalView(width, height int) string {
	cw := width - 4

	exercise := s.renderExercise(cw)
	tutorPanel := s.renderTutor(cw)
	used := lipgloss.Height(exercise) + 1
	if tutorPanel != "" {
		used += lipgloss.Height(tutorPanel) + 1
	}
	termHeight := height - used
	if termHeight < 6 {
		termHeight = 6
	}

	sections := []string{exercise, s.renderTerminal(cw, termHeight)}
	if tutorPanel != "" {
		sections = append(sections, tutorPanel)
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(sections, "\n"))
}

// renderExercise shows the active exercise and per-exercise progress.
func (s *PracticeScreen) renderExercise(cw int) string {
	idx, ex := s.tracker.Current()
	done := s.tracker.Completed()

	var dots strings.Builder
	for i, d := range done {
		switch {
		case d:
			dots.WriteString(theme.Correct.Render("●"))
		case i == idx:
			dots.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("◉"))
		default:
			dots.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("○"))
		}
		dots.WriteString(" ")
	}

	head := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Exercise %d/%d", idx+1, len(done)))
	line := head + "  " + dots.String()

	body := lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(ex.Instruction)
	out := line + "\n" + body
	if s.showHint {
		out += "\n" + theme.Hint.Render("Hint: "+ex.Hint)
	}
	if s.errMsg != "" {
		out += "\n" + theme.Incorrect.Render(s.errMsg)
	}
	return out
}

// renderTerminal draws the history and the prompt, keeping the newest
// lines when they do not fit.
func (s *PracticeScreen) renderTerminal(cw, height int) string {
	var lines []string
	for _, e := range s.tracker.History() {
		mark := theme.Incorrect.Render("✗")
		if e.Correct {
			mark = theme.Correct.Render("✓")
		}
		lines = append(lines, mark+" "+theme.Prompt.Render("$ ")+theme.Output.Render(e.Command))
		if e.Output != "" {
			for _, l := range strings.Split(e.Output, "\n") {
				lines = append(lines, "  "+theme.Output.Render(l))
			}
		}
	}

	inner := height - 2
	prompt := theme.Prompt.Render("user@linuxlearn:"+promptPath(s.tracker.Cwd())+"$ ") + s.input.View()
	if keep := inner - 1; len(lines) > keep {
		if keep < 0 {
			keep = 0
		}
		lines = lines[len(lines)-keep:]
	}
	lines = append(lines, prompt)

	return theme.Terminal.
		Width(cw).
		Height(inner).
		Render(strings.Join(lines, "\n"))
}

func (s *PracticeScreen) renderTutor(cw int) string {
	style := lipgloss.NewStyle().
		Width(cw).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1)
	head := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("LinuxLearn AI")

	switch {
	case s.tutorWaiting:
		return style.Render(head + "\n" + theme.Hint.Render("Thinking..."))
	case s.tutorErr != "":
		return style.Render(head + "\n" + theme.Incorrect.Render(s.tutorErr))
	case s.explanation != nil:
		body := theme.Body.Render(s.explanation.Explanation) + "\n" +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render("Tip: "+s.explanation.Tip)
		if s.explanation.SuggestedCommand != "" {
			body += "\n" + theme.Prompt.Render("Try: "+s.explanation.SuggestedCommand)
		}
		return style.Render(head + "\n" + body)
	}
	return ""
}

func renderQuitConfirm(width, height int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Leave this level?") + "\n\n" +
		theme.Hint.Render("Your progress on the current exercises will be lost.") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Y to leave · N to keep going")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(msg))
}
