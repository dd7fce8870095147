package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/linuxlearn/internal/config"
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// backends returns every Store implementation that can run locally.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	out := map[string]Store{
		"memory": NewMemory(),
		"sqlite": openTestSQLite(t),
	}
	if addr := os.Getenv("LINUXLEARN_TEST_REDIS_ADDR"); addr != "" {
		r, err := OpenRedis(context.Background(), config.Redis{Addr: addr, Prefix: "linuxlearn-test:" + t.Name() + ":"})
		if err != nil {
			t.Fatalf("open redis: %v", err)
		}
		t.Cleanup(func() { r.Close() })
		out["redis"] = r
	}
	return out
}

func TestStoreGetSetRemove(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
				t.Fatalf("Get(missing) = ok %v, err %v; want absent", ok, err)
			}

			if err := s.Set(ctx, KeyUserPoints, "50"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Set(ctx, KeyUserPoints, "125"); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			v, ok, err := s.Get(ctx, KeyUserPoints)
			if err != nil || !ok || v != "125" {
				t.Fatalf("Get = %q, %v, %v; want 125", v, ok, err)
			}

			if err := s.Remove(ctx, KeyUserPoints); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if _, ok, _ := s.Get(ctx, KeyUserPoints); ok {
				t.Error("key still present after Remove")
			}
			if err := s.Remove(ctx, KeyUserPoints); err != nil {
				t.Errorf("Remove of absent key: %v", err)
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.db")

	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, KeyCompletedLevels, "[1,2]"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, ok, err := s.Get(ctx, KeyCompletedLevels)
	if err != nil || !ok || v != "[1,2]" {
		t.Errorf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestSQLite(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenSelectsDriver(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, config.Storage{Driver: config.DriverMemory})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*Memory); !ok {
		t.Errorf("memory driver returned %T", s)
	}

	path := filepath.Join(t.TempDir(), "nested", "dir", "x.db")
	s, err = Open(ctx, config.Storage{Driver: config.DriverSQLite, Path: path})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer s.Close()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}

	if _, err := Open(ctx, config.Storage{Driver: "etcd"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	if err := SetJSON(ctx, s, KeyCompletedLevels, []int{1, 3, 5}); err != nil {
		t.Fatal(err)
	}
	var got []int
	ok, err := GetJSON(ctx, s, KeyCompletedLevels, &got)
	if err != nil || !ok || len(got) != 3 || got[2] != 5 {
		t.Errorf("GetJSON = %v, %v, %v", got, ok, err)
	}

	_ = s.Set(ctx, KeyCompletedLevels, "[1,")
	ok, err = GetJSON(ctx, s, KeyCompletedLevels, &got)
	if ok || !errors.Is(err, ErrMalformed) {
		t.Errorf("malformed JSON: ok=%v err=%v, want ErrMalformed", ok, err)
	}

	_ = s.Set(ctx, KeyUserPoints, "lots")
	if _, _, err := GetInt(ctx, s, KeyUserPoints); !errors.Is(err, ErrMalformed) {
		t.Errorf("GetInt malformed err = %v", err)
	}

	if err := SetFlag(ctx, s, KeyExamCompleted, true); err != nil {
		t.Fatal(err)
	}
	if on, _ := GetFlag(ctx, s, KeyExamCompleted); !on {
		t.Error("flag not set")
	}
	if err := SetFlag(ctx, s, KeyExamCompleted, false); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, KeyExamCompleted); ok {
		t.Error("cleared flag should be removed")
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LINUXLEARN_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "linuxlearn", "linuxlearn.db"); got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}

	t.Setenv("LINUXLEARN_DB", filepath.Join(dir, "custom", "x.db"))
	got, err = DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, "custom", "x.db") {
		t.Errorf("env override = %q", got)
	}
}
