// Package levelmap lists every level grouped by tier with its lock state.
package levelmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screen"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/screens/practice"
	"github.com/abhisek/linuxlearn/internal/ui/layout"
	"github.com/abhisek/linuxlearn/internal/ui/theme"
)

type rowKind int

const (
	rowTierHeader rowKind = iota
	rowLevel
)

type row struct {
	kind  rowKind
	tier  levels.Tier
	level *levels.Level
}

// LevelMapScreen displays the level catalogue organized by tier.
type LevelMapScreen struct {
	svc          *screens.Services
	rows         []row
	cursor       int
	scrollOffset int
	completed    map[int]bool
	notice       string
}

var _ screen.Screen = (*LevelMapScreen)(nil)
var _ screen.KeyHintProvider = (*LevelMapScreen)(nil)

// New creates a LevelMapScreen with the cursor on the next level to play.
func New(svc *screens.Services) *LevelMapScreen {
	var rows []row
	all := levels.All()
	for i := range all {
		l := &all[i]
		if i == 0 || all[i-1].Tier() != l.Tier() {
			rows = append(rows, row{kind: rowTierHeader, tier: l.Tier()})
		}
		rows = append(rows, row{kind: rowLevel, tier: l.Tier(), level: l})
	}

	s := &LevelMapScreen{svc: svc, rows: rows}
	s.reload()

	target := 1
	if next, ok := levels.Next(s.completed); ok {
		target = next.ID
	}
	for i, r := range s.rows {
		if r.kind == rowLevel && r.level.ID == target {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *LevelMapScreen) reload() {
	state, err := s.svc.Progress.Load(context.Background())
	if err != nil {
		s.svc.Log.Warn("load progress", "error", err)
	}
	s.completed = state.Completed
}

func (s *LevelMapScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.ResumeMsg:
		s.reload()
	case tea.KeyMsg:
		s.notice = ""
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextTier()
		case "shift+tab":
			s.prevTier()
		case "enter":
			return s, s.selectLevel()
		case "q":
			return s, router.Pop
		}
	}
	return s, nil
}

func (s *LevelMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	listHeight := height - 3
	s.adjustScroll(listHeight)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= listHeight {
			break
		}

		switch r.kind {
		case rowTierHeader:
			lines = append(lines, s.renderTierHeader(r.tier, width))
		case rowLevel:
			lines = append(lines, s.renderLevelRow(r, i == s.cursor, width))
		}
		visible++
	}

	lines = append(lines, "", s.renderFooterLine(width))
	return strings.Join(lines, "\n")
}

func (s *LevelMapScreen) Title() string {
	return "Levels"
}

// KeyHints returns the key binding hints for the footer.
func (s *LevelMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Tier"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping tier headers.
func (s *LevelMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLevel {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextTier jumps to the first level of the next tier.
func (s *LevelMapScreen) nextTier() {
	current := s.rows[s.cursor].tier
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLevel && s.rows[i].tier != current {
			s.cursor = i
			return
		}
	}
}

// prevTier jumps to the first level of the previous tier.
func (s *LevelMapScreen) prevTier() {
	current := s.rows[s.cursor].tier
	if current == levels.TierBeginner {
		return
	}
	target := current - 1
	for i, r := range s.rows {
		if r.kind == rowLevel && r.tier == target {
			s.cursor = i
			return
		}
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *LevelMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowTierHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectLevel opens the level under the cursor if it is unlocked.
func (s *LevelMapScreen) selectLevel() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowLevel || r.level == nil {
		return nil
	}
	open, err := s.svc.Progress.IsUnlocked(context.Background(), r.level.ID)
	if err != nil {
		s.svc.Log.Warn("check unlock", "level", r.level.ID, "error", err)
	}
	if !open {
		s.notice = fmt.Sprintf("Complete level %d to unlock %q.", r.level.ID-1, r.level.Title)
		return nil
	}
	return router.Push(practice.New(s.svc, *r.level))
}

func (s *LevelMapScreen) levelState(id int) levels.State {
	return levels.StateOf(id, s.completed)
}

func (s *LevelMapScreen) renderTierHeader(tier levels.Tier, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(tier.String()))
}

func (s *LevelMapScreen) renderLevelRow(r row, selected bool, width int) string {
	if r.level == nil {
		return ""
	}

	state := s.levelState(r.level.ID)
	pts := fmt.Sprintf("%3d pts", r.level.Points)

	iconWidth := 3
	ptsWidth := 8
	labelWidth := 10
	timeWidth := 8
	nameWidth := width - 4 - iconWidth - ptsWidth - labelWidth - timeWidth - 8
	if nameWidth < 10 {
		nameWidth = 10
	}

	name := fmt.Sprintf("%2d. %s", r.level.ID, r.level.Title)
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	var nameStyle, labelStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case state == levels.StateCompleted:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
	case state == levels.StateAvailable:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	default:
		nameStyle = dim
		labelStyle = dim
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s %s  %s  %s  %s",
		cursor,
		state.Icon(),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		dim.Render(pts),
		dim.Render(fmt.Sprintf("%-*s", timeWidth, r.level.EstimatedTime)),
		labelStyle.Render(fmt.Sprintf("%9s", state.Label())),
	)
}

// renderFooterLine describes the selected level, or shows why it is locked.
func (s *LevelMapScreen) renderFooterLine(width int) string {
	if s.notice != "" {
		return lipgloss.NewStyle().Foreground(theme.Accent).Padding(0, 2).Render(s.notice)
	}
	r := s.rows[s.cursor]
	if r.level == nil {
		return ""
	}
	text := r.level.Description + " · " + strings.Join(r.level.Commands, ", ")
	return lipgloss.NewStyle().Foreground(theme.TextDim).Width(width).Padding(0, 2).Render(text)
}
