package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/screens/welcome"
	"github.com/abhisek/linuxlearn/internal/ui/components"
	"github.com/abhisek/linuxlearn/internal/ui/theme"
)

const titleCompact = "$ l i n u x l e a r n"

// renderTitle returns the block banner, or one line in compact mode.
func renderTitle(cw int, compact bool) string {
	title := welcome.RenderBanner(cw)
	if compact {
		title = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(titleCompact)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title)
}

// dashboard is what the stats bar shows.
type dashboard struct {
	points    int
	completed int
	total     int
	examScore int
	examTaken bool
	badge     bool
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(d dashboard, cw int, compact bool) string {
	pointsStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	examStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	exam := dimStyle.Render("EXAM —")
	switch {
	case d.badge:
		exam = examStyle.Render("🐉 DRAGON MASTER")
	case d.examTaken:
		exam = examStyle.Render(fmt.Sprintf("EXAM %d%%", d.examScore))
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			pointsStyle.Render(fmt.Sprintf("★%d", d.points)),
			levelStyle.Render(fmt.Sprintf("▣%d/%d", d.completed, d.total)),
			exam,
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			pointsStyle.Render(fmt.Sprintf("★ %d POINTS", d.points)),
			levelStyle.Render(fmt.Sprintf("▣ %d/%d LEVELS", d.completed, d.total)),
			exam,
		)
		stats += "\n" + components.NewProgressBar(d.completed, d.total, cw-6).View()
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 32

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(m components.Menu, cw int) string {
	var buttons []string
	for i, item := range m.Items {
		label := item.Label
		if item.Detail != "" {
			label += " · " + item.Detail
		}
		buttons = append(buttons, components.ArcadeButton(label, i == m.Selected, item.Disabled, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders plain lines for small terminals where bordered
// buttons would overflow.
func renderMenuCompact(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(m.View())
}

// renderTutorNote notes that the tutor is unavailable.
func renderTutorNote(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("AI tutor offline: set an LLM API key to enable it (see linuxlearn llm check)")
}

// renderMascotBox renders the mascot in a card matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return components.ArcadeCard(RenderMascot(variant), cw)
}
