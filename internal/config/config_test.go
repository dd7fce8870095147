package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LINUXLEARN_STORE", "LINUXLEARN_DB", "LINUXLEARN_REDIS_ADDR", "LINUXLEARN_REDIS_PASSWORD",
		"LINUXLEARN_REDIS_DB", "LINUXLEARN_SYNC_INTERVAL", "LINUXLEARN_LOG_LEVEL",
		"LINUXLEARN_LOG_FILE", "LINUXLEARN_LLM_PROVIDER", "LINUXLEARN_LLM_MODEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Driver != DriverSQLite {
		t.Errorf("driver = %q, want sqlite", cfg.Storage.Driver)
	}
	if cfg.Session.SyncInterval != 30*time.Second {
		t.Errorf("sync interval = %s, want 30s", cfg.Session.SyncInterval)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
storage:
  driver: redis
  redis:
    addr: cache:6379
    prefix: "ll:"
session:
  sync_interval: 10s
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LINUXLEARN_REDIS_DB", "2")
	t.Setenv("LINUXLEARN_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Driver != DriverRedis || cfg.Storage.Redis.Addr != "cache:6379" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Storage.Redis.Prefix != "ll:" || cfg.Storage.Redis.DB != 2 {
		t.Errorf("redis = %+v", cfg.Storage.Redis)
	}
	if cfg.Session.SyncInterval != 10*time.Second {
		t.Errorf("sync interval = %s, want 10s", cfg.Session.SyncInterval)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want env override warn", cfg.Log.Level)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"LINUXLEARN_STORE": "mongo"}},
		{"bad interval", map[string]string{"LINUXLEARN_SYNC_INTERVAL": "soon"}},
		{"zero interval", map[string]string{"LINUXLEARN_SYNC_INTERVAL": "0s"}},
		{"bad redis db", map[string]string{"LINUXLEARN_REDIS_DB": "one"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestLogFileDefault(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	got, err := Default().LogFile()
	if err != nil {
		t.Fatal(err)
	}
	if want := "/tmp/state/linuxlearn/linuxlearn.log"; got != want {
		t.Errorf("LogFile() = %q, want %q", got, want)
	}
}
