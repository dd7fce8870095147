// Package store persists learner progress as string key/value pairs.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/linuxlearn/internal/config"
)

// ErrMalformed reports a stored value that could not be decoded.
// Callers treat such values as absent.
var ErrMalformed = errors.New("malformed stored value")

// Store is the key/value persistence used by every progress component.
// A missing key is reported as ok=false with a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Open returns the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.Storage) (Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		path := cfg.Path
		if path == "" {
			p, err := DefaultDBPath()
			if err != nil {
				return nil, err
			}
			path = p
		} else if err := EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
		return OpenSQLite(ctx, path)
	case config.DriverRedis:
		return OpenRedis(ctx, cfg.Redis)
	case config.DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Driver)
	}
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LINUXLEARN_DB environment variable
// 2. $XDG_DATA_HOME/linuxlearn/linuxlearn.db
// 3. ~/.local/share/linuxlearn/linuxlearn.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LINUXLEARN_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "linuxlearn", "linuxlearn.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
