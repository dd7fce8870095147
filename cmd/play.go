package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/linuxlearn/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the interactive course",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds the services and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := tuiLogger(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	e, err := openEnv(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer e.close()

	if dir, err := filepath.Abs("."); err == nil {
		e.svc.ExportDir = dir
	}
	if !e.svc.Tutor.Enabled() {
		fmt.Fprintln(cmd.ErrOrStderr(), "AI tutor not configured; explanations will be unavailable.")
	}

	log.Info("starting tui", "store", cfg.Storage.Driver, "tutor", e.svc.Tutor.Model())
	return app.Run(ctx, e.svc)
}
