package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/linuxlearn/internal/config"
	"github.com/abhisek/linuxlearn/internal/identity"
	"github.com/abhisek/linuxlearn/internal/llm"
	"github.com/abhisek/linuxlearn/internal/logger"
	"github.com/abhisek/linuxlearn/internal/screens"
	"github.com/abhisek/linuxlearn/internal/store"
	"github.com/abhisek/linuxlearn/internal/tutor"
)

// env is everything a command needs once the store is open.
type env struct {
	cfg   config.Config
	log   *logger.Logger
	store store.Store
	svc   *screens.Services
}

// loadConfig reads the config file and applies the global flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Storage.Driver = config.DriverSQLite
		cfg.Storage.Path = db
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg, nil
}

// cliLogger writes to stderr at warn unless a level was asked for.
func cliLogger(cmd *cobra.Command, cfg config.Config) (*logger.Logger, error) {
	level := "warn"
	if cmd.Flags().Changed("log-level") {
		level = cfg.Log.Level
	}
	return logger.New(logger.Options{Level: level, Console: true})
}

// tuiLogger writes JSON to the log file; the TUI owns the terminal.
func tuiLogger(cfg config.Config) (*logger.Logger, error) {
	file, err := cfg.LogFile()
	if err != nil {
		return nil, fmt.Errorf("resolve log file: %w", err)
	}
	return logger.New(logger.Options{Level: cfg.Log.Level, File: file})
}

// openEnv opens the store, restores any saved login and wires the
// services. The caller must call close.
func openEnv(ctx context.Context, cfg config.Config, log *logger.Logger) (*env, error) {
	st, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	adapter := identity.NewAdapter(st, log.With("component", "identity"),
		identity.WithSyncInterval(cfg.Session.SyncInterval))
	if _, err := adapter.Restore(ctx); err != nil {
		adapter.Close()
		st.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	tut := tutor.NewService(newProvider(ctx, cfg, log), tutor.DefaultConfig(), log.With("component", "tutor"))
	return &env{
		cfg:   cfg,
		log:   log,
		store: st,
		svc:   screens.NewServices(st, adapter, tut, log),
	}, nil
}

// newProvider builds the tutor's LLM provider. It returns nil, leaving
// the tutor disabled, when nothing is configured or setup fails.
func newProvider(ctx context.Context, cfg config.Config, log *logger.Logger) llm.Provider {
	llmCfg, err := llm.Resolve(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.Timeout)
	if errors.Is(err, llm.ErrNotConfigured) {
		log.Info("no LLM provider configured; tutor disabled")
		return nil
	}
	if err != nil {
		log.Warn("LLM configuration invalid; tutor disabled", "error", err)
		return nil
	}
	p, err := llm.NewProvider(ctx, llmCfg, log.With("component", "llm"))
	if err != nil {
		log.Warn("LLM provider unavailable; tutor disabled", "error", err)
		return nil
	}
	return p
}

func (e *env) close() {
	e.svc.Identity.Close()
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", "error", err)
	}
	e.log.Sync()
}

// withEnv runs fn with a CLI env built from the command's flags.
func withEnv(cmd *cobra.Command, fn func(ctx context.Context, e *env) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := cliLogger(cmd, cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	e, err := openEnv(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer e.close()
	return fn(ctx, e)
}
