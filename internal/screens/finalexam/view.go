package finalexam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/badge"
	"github.com/abhisek/linuxlearn/internal/exam"
	"github.com/abhisek/linuxlearn/internal/ui/components"
	"github.com/abhisek/linuxlearn/internal/ui/theme"
)

func (s *ExamScreen) View(width, height int) string {
	var body string
	switch {
	case s.confirmQuit:
		body = confirmBox("Quit the exam?", "Your answers will not be saved.")
	case s.confirmSubmit:
		left := s.attempt.Len() - s.attempt.AnsweredCount()
		body = confirmBox("Submit the exam?", fmt.Sprintf("%d question(s) are unanswered and will count as wrong.", left))
	case s.phase == phaseLocked:
		body = s.renderLocked()
	case s.phase == phaseQuestions:
		body = s.renderQuestion(width)
	case s.phase == phaseResults:
		body = s.renderResults()
	}
	if s.errMsg != "" {
		body += "\n\n" + theme.Incorrect.Render(s.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func confirmBox(title, detail string) string {
	return theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title) + "\n\n" +
			theme.Hint.Render(detail) + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Y / N"))
}

func (s *ExamScreen) renderLocked() string {
	bar := components.NewProgressBar(s.gate.Completed, s.gate.Total, 30)
	return theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("🔒 Final exam locked") + "\n\n" +
			theme.Body.Render(fmt.Sprintf("Complete all %d levels to take the exam.", s.gate.Total)) + "\n" +
			theme.Body.Render(fmt.Sprintf("Progress: %s levels completed", s.gate)) + "\n\n" +
			bar.View())
}

func (s *ExamScreen) renderQuestion(width int) string {
	idx, q := s.attempt.Current()
	cw := min(width-8, 80)

	var b strings.Builder
	head := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Question %d of %d", idx+1, s.attempt.Len()))
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("   %d pts · %d answered", q.Points(), s.attempt.AnsweredCount()))
	b.WriteString(head + meta + "\n\n")

	switch q.(type) {
	case exam.MultipleChoice:
		b.WriteString(lipgloss.NewStyle().Width(cw).Render(s.mc.View()))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("↑↓ and Enter, or A-D"))
	case exam.Command:
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(q.Prompt()))
		b.WriteString("\n\n")
		b.WriteString(theme.Terminal.Width(cw).Render(s.input.View()))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Enter saves and moves on"))
	}
	b.WriteString("\n\n")
	b.WriteString(s.renderDots(idx))
	return b.String()
}

// renderDots shows which questions have an answer.
func (s *ExamScreen) renderDots(current int) string {
	var b strings.Builder
	for i, q := range exam.Questions() {
		_, answered := s.attempt.Answered(q.ID())
		switch {
		case i == current:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("◉"))
		case answered:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("●"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("○"))
		}
		b.WriteString(" ")
	}
	return b.String()
}

func (s *ExamScreen) renderResults() string {
	res := s.result
	var b strings.Builder

	scoreStyle := theme.Incorrect
	if res.Passed {
		scoreStyle = theme.Correct
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d%%", res.Score)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("   (%d of %d points)", res.Earned, res.Max)))
	b.WriteString("\n\n")

	for _, q := range exam.Questions() {
		mark := theme.Incorrect.Render("✗")
		if res.Correct[q.ID()] {
			mark = theme.Correct.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s %2d. %s\n", mark, q.ID(), truncate(q.Prompt(), 60)))
	}
	b.WriteString("\n")

	if !res.Passed {
		b.WriteString(theme.Body.Render(fmt.Sprintf("You need %d%% for the %s badge. Review the levels and try again.", badge.PassingScore, badge.Name)))
		return b.String()
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).
		Render("🐉 You earned the " + badge.Name + " badge!"))
	b.WriteString("\n\n")
	b.WriteString(s.name.View())
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
