// Package config loads linuxlearn settings from an optional YAML file and
// LINUXLEARN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config is the full application configuration.
type Config struct {
	Storage Storage `yaml:"storage"`
	Session Session `yaml:"session"`
	Log     Log     `yaml:"log"`
	LLM     LLM     `yaml:"llm"`
}

// Storage selects and configures the progress store backend.
type Storage struct {
	Driver string `yaml:"driver"`
	// Path is the SQLite database file. Empty means the XDG data default.
	Path  string `yaml:"path"`
	Redis Redis  `yaml:"redis"`
}

// Redis holds connection settings for the redis driver.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"-"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Session configures the identity sync loop.
type Session struct {
	SyncInterval time.Duration `yaml:"sync_interval"`
}

// Log configures the zap logger.
type Log struct {
	Level string `yaml:"level"`
	// File is where the TUI writes logs. Empty means the XDG state default.
	File string `yaml:"file"`
}

// LLM selects the optional tutor provider. API keys are read from the
// environment only.
type LLM struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: Storage{
			Driver: DriverSQLite,
			Redis: Redis{
				Addr:   "localhost:6379",
				Prefix: "linuxlearn:",
			},
		},
		Session: Session{SyncInterval: 30 * time.Second},
		Log:     Log{Level: "info"},
		LLM:     LLM{Timeout: 30 * time.Second},
	}
}

// Dir returns $XDG_CONFIG_HOME/linuxlearn, falling back to ~/.config.
func Dir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns $XDG_STATE_HOME/linuxlearn, falling back to ~/.local/state.
func StateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func xdgDir(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, "linuxlearn"), nil
}

// DefaultPath returns the config file location, honoring LINUXLEARN_CONFIG.
func DefaultPath() (string, error) {
	if p := os.Getenv("LINUXLEARN_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads path on top of the defaults and then applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overlays LINUXLEARN_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("LINUXLEARN_STORE"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("LINUXLEARN_DB"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("LINUXLEARN_REDIS_ADDR"); v != "" {
		c.Storage.Redis.Addr = v
	}
	if v := os.Getenv("LINUXLEARN_REDIS_PASSWORD"); v != "" {
		c.Storage.Redis.Password = v
	}
	if v := os.Getenv("LINUXLEARN_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LINUXLEARN_REDIS_DB: %w", err)
		}
		c.Storage.Redis.DB = n
	}
	if v := os.Getenv("LINUXLEARN_SYNC_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("LINUXLEARN_SYNC_INTERVAL: %w", err)
		}
		c.Session.SyncInterval = d
	}
	if v := os.Getenv("LINUXLEARN_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LINUXLEARN_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("LINUXLEARN_LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LINUXLEARN_LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	return nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverMemory:
	case DriverRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("storage.redis.addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}
	if c.Session.SyncInterval <= 0 {
		return fmt.Errorf("session.sync_interval must be positive, got %s", c.Session.SyncInterval)
	}
	return nil
}

// LogFile returns the configured log file or the default under StateDir.
func (c Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "linuxlearn.log"), nil
}
