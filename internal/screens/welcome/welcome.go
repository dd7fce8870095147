package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screen"
	"github.com/abhisek/linuxlearn/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	typeEvery    = 2
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

// bootLine is typed out one character every typeEvery ticks.
const bootLine = "$ sudo learn --linux"

const terminalArt = `╭──────────────────────────╮
│ ● ● ●                    │
├──────────────────────────┤
│ %-24s │
│                          │
╰──────────────────────────╯`

type tickMsg time.Time

// WelcomeScreen types a boot command into a terminal, then shows the banner.
// Any key moves on to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.homeFactory())
}

// typed returns the part of bootLine shown so far, with a blinking cursor.
func (w *WelcomeScreen) typed() string {
	n := w.tickCount / typeEvery
	if n > len(bootLine) {
		n = len(bootLine)
	}
	cursor := "█"
	if n == len(bootLine) && w.tickCount%6 >= 3 {
		cursor = " "
	}
	return bootLine[:n] + cursor
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	term := strings.Replace(terminalArt, "%-24s", padRight(w.typed(), 24), 1)
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(term))

	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Master the command line, one level at a time.")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
