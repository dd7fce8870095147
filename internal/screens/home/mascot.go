package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linuxlearn/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotReady                     // exam unlocked
	MascotCelebrating               // badge earned
)

const mascotIdle = `   .--.
  |o_o |
  |:_/ |
 //   \ \
(|     | )
/'\_   _/'\
\___)=(___/`

const mascotReady = `   .--.   !
  |O_O |
  |:_/ |
 //   \ \
(|     | )
/'\_   _/'\
\___)=(___/`

const mascotCelebrating = `  \.--./
  |^_^ |
  |:_/ |
 //   \ \
(|  ★  | )
/'\_   _/'\
\___)=(___/`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotReady:
		art = mascotReady
		fg = theme.Accent
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Gold
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
