// Package screens holds what every TUI screen shares: the domain services
// and the messages screens send to the app.
package screens

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linuxlearn/internal/badge"
	"github.com/abhisek/linuxlearn/internal/exam"
	"github.com/abhisek/linuxlearn/internal/identity"
	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/logger"
	"github.com/abhisek/linuxlearn/internal/progress"
	"github.com/abhisek/linuxlearn/internal/shell"
	"github.com/abhisek/linuxlearn/internal/store"
	"github.com/abhisek/linuxlearn/internal/tutor"
	"github.com/abhisek/linuxlearn/internal/ui/layout"
)

// Services are the domain services the screens drive. Tutor may be
// disabled; everything else is required.
type Services struct {
	Progress *progress.Service
	Badges   *badge.Service
	Exam     *exam.Engine
	Identity *identity.Adapter
	Tutor    *tutor.Service
	Shell    *shell.Shell
	Log      *logger.Logger

	// ExportDir is where certificates are written. Empty means the
	// working directory.
	ExportDir string
}

// NewServices wires every service over st.
func NewServices(st store.Store, adapter *identity.Adapter, tut *tutor.Service, log *logger.Logger) *Services {
	if log == nil {
		log = logger.Nop()
	}
	prog := progress.NewService(st, log.With("component", "progress"))
	badges := badge.NewService(st, log.With("component", "badge"))
	return &Services{
		Progress: prog,
		Badges:   badges,
		Exam:     exam.NewEngine(st, prog, badges, log.With("component", "exam")),
		Identity: adapter,
		Tutor:    tut,
		Shell:    shell.New(),
		Log:      log,
	}
}

// ProgressChangedMsg tells the app to refresh the header stats.
type ProgressChangedMsg struct{}

// ProgressChanged is a tea.Cmd that emits ProgressChangedMsg.
func ProgressChanged() tea.Msg { return ProgressChangedMsg{} }

// Stats loads the header statistics. Load errors leave zero values.
func (s *Services) Stats(ctx context.Context) layout.Stats {
	var stats layout.Stats
	state, err := s.Progress.Load(ctx)
	if err != nil {
		s.Log.Warn("load progress for header", "error", err)
	}
	stats.Points = state.Points
	stats.Completed = state.CompletedCount()
	stats.Total = levels.Count()
	if s.Identity != nil {
		if id := s.Identity.Current(); id != nil {
			stats.User = id.Name
		}
	}
	return stats
}
