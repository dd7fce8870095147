// Package certificate shows the Dragon Master badge and exports the
// printable certificate.
package certificate

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/badge"
	"github.com/abhisek/linuxlearn/internal/router"
	"github.com/abhisek/linuxlearn/internal/screen"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/ui/layout"
	"github.com/abhisek/linuxlearn/internal/ui/theme"
)

const dragonArt = `      /\_/\
  ___/ o o \___
 <___   ^   ___>
     \ \_/ /
  ~~~ \___/ ~~~`

// CertificateScreen displays the badge record.
type CertificateScreen struct {
	svc      *screens.Services
	rec      badge.Record
	exported string
	errMsg   string
}

var _ screen.Screen = (*CertificateScreen)(nil)
var _ screen.KeyHintProvider = (*CertificateScreen)(nil)

// New loads the current badge record.
func New(svc *screens.Services) *CertificateScreen {
	s := &CertificateScreen{svc: svc}
	rec, err := svc.Badges.Load(context.Background())
	if err != nil {
		s.errMsg = err.Error()
	}
	s.rec = rec
	return s
}

func (s *CertificateScreen) Init() tea.Cmd {
	return nil
}

func (s *CertificateScreen) Title() string {
	return "Dragon Badge"
}

func (s *CertificateScreen) KeyHints() []layout.KeyHint {
	if !s.rec.Earned {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "E", Description: "Export certificate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CertificateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "e", "E":
		s.export()
	case "q", "enter":
		return s, router.Pop
	}
	return s, nil
}

func (s *CertificateScreen) export() {
	if !s.rec.Earned {
		return
	}
	dir := s.svc.ExportDir
	if dir == "" {
		dir = "."
	}
	path, err := badge.ExportCertificate(dir, s.rec)
	if err != nil {
		s.errMsg = err.Error()
		s.svc.Log.Error("export certificate", "error", err)
		return
	}
	s.errMsg = ""
	s.exported = path
	s.svc.Log.Info("certificate exported", "path", path)
}

func (s *CertificateScreen) View(width, height int) string {
	var b strings.Builder
	if !s.rec.Earned {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(dragonArt))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("The " + badge.Name + " badge is not earned yet."))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Finish every level, then score %d%% or more on the final exam.", badge.PassingScore)))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Render(dragonArt))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(badge.Name))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Awarded to " + s.rec.DisplayName()))
		b.WriteString("\n")
		if !s.rec.IssuedAt.IsZero() {
			b.WriteString(theme.Body.Render("Issued " + s.rec.IssuedAt.Local().Format("January 2, 2006")))
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Certificate " + s.rec.CertID))
		if s.exported != "" {
			b.WriteString("\n\n")
			b.WriteString(theme.Correct.Render("Saved " + s.exported))
		}
	}
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}
	card := theme.Card.Align(lipgloss.Center).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
