package home

import (
	"context"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screen"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/screens/certificate"
	"github.com/abhisek/linuxlearn/internal/screens/finalexam"
	"github.com/abhisek/linuxlearn/internal/screens/levelmap"
	"github.com/abhisek/linuxlearn/internal/screens/login"
	"github.com/abhisek/linuxlearn/internal/screens/practice"
	"github.com/abhisek/linuxlearn/internal/screens/reference"
	"github.com/abhisek/linuxlearn/internal/ui/components"
	"github.com/abhisek/linuxlearn/internal/ui/layout"
)

// Menu labels.
const (
	labelContinue = "CONTINUE LEARNING"
	labelLevels   = "ALL LEVELS"
	labelExam     = "FINAL EXAM"
	labelBadge    = "DRAGON BADGE"
	labelCommands = "COMMANDS"
	labelLogin    = "LOG IN"
	labelLogout   = "LOG OUT"
	labelQuit     = "QUIT"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	svc           *screens.Services
	menu          components.Menu
	dash          dashboard
	mascotVariant MascotVariant
	errMsg        string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *screens.Services) *HomeScreen {
	h := &HomeScreen{svc: svc}
	h.refresh()
	return h
}

// refresh reloads progress and rebuilds the menu, keeping the selection.
func (h *HomeScreen) refresh() {
	ctx := context.Background()
	state, err := h.svc.Progress.Load(ctx)
	if err != nil {
		h.svc.Log.Warn("load progress", "error", err)
	}
	status, err := h.svc.Exam.Status(ctx)
	if err != nil {
		h.svc.Log.Warn("load exam status", "error", err)
	}
	rec, err := h.svc.Badges.Load(ctx)
	if err != nil {
		h.svc.Log.Warn("load badge", "error", err)
	}

	h.dash = dashboard{
		points:    state.Points,
		completed: state.CompletedCount(),
		total:     levels.Count(),
		examScore: status.Score,
		examTaken: status.Completed,
		badge:     rec.Earned,
	}

	allDone := levels.AllCompleted(state.Completed)
	switch {
	case rec.Earned:
		h.mascotVariant = MascotCelebrating
	case allDone:
		h.mascotVariant = MascotReady
	default:
		h.mascotVariant = MascotIdle
	}

	svc := h.svc
	next, hasNext := levels.Next(state.Completed)
	continueItem := components.MenuItem{Label: labelContinue, Disabled: !hasNext}
	if hasNext {
		continueItem.Detail = "level " + strconv.Itoa(next.ID)
		continueItem.Action = func() tea.Cmd { return router.Push(practice.New(svc, next)) }
	}

	examItem := components.MenuItem{Label: labelExam, Action: func() tea.Cmd {
		return router.Push(finalexam.New(svc))
	}}
	if !allDone {
		examItem.Detail = "locked " + strconv.Itoa(h.dash.completed) + "/" + strconv.Itoa(h.dash.total)
	}

	sessionItem := components.MenuItem{Label: labelLogin, Action: func() tea.Cmd {
		return router.Push(login.New(svc))
	}}
	if id := svc.Identity.Current(); id != nil {
		sessionItem = components.MenuItem{Label: labelLogout, Detail: id.Name, Action: h.logout}
	}

	items := []components.MenuItem{
		continueItem,
		{Label: labelLevels, Action: func() tea.Cmd { return router.Push(levelmap.New(svc)) }},
		examItem,
		{Label: labelBadge, Action: func() tea.Cmd { return router.Push(certificate.New(svc)) }},
		{Label: labelCommands, Action: func() tea.Cmd { return router.Push(reference.New()) }},
		sessionItem,
		{Label: labelQuit, Action: func() tea.Cmd { return tea.Quit }},
	}

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) logout() tea.Cmd {
	if err := h.svc.Identity.Logout(context.Background()); err != nil {
		h.errMsg = err.Error()
		h.svc.Log.Error("logout", "error", err)
		return nil
	}
	h.errMsg = ""
	return screens.ProgressChanged
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case router.ResumeMsg, screens.ProgressChangedMsg:
		h.refresh()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight + 2
	compact := layout.IsCompactHeight(termHeight) || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}
	sections = append(sections, renderStatsBar(h.dash, cw, compact))
	if compact {
		sections = append(sections, renderMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, renderMenu(h.menu, cw))
	}
	if !h.svc.Tutor.Enabled() {
		sections = append(sections, renderTutorNote(cw))
	}
	if h.errMsg != "" {
		sections = append(sections, h.errMsg)
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
