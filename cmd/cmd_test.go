package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/linuxlearn/internal/badge"
	"github.com/abhisek/linuxlearn/internal/commands"
	"github.com/abhisek/linuxlearn/internal/levels"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestExecRunsShellLine(t *testing.T) {
	out, _, err := execute(t, "exec", "--cwd", "/home/user", "--", "pwd")
	require.NoError(t, err)
	assert.Equal(t, "/home/user\n", out)
}

func TestExecReportsDirectoryChange(t *testing.T) {
	_, errOut, err := execute(t, "exec", "--cwd", "/home/user", "--", "cd", "documents")
	require.NoError(t, err)
	assert.Equal(t, "cwd: /home/user/documents\n", errOut)
}

func TestExecRejectsUnknownCwd(t *testing.T) {
	_, _, err := execute(t, "exec", "--cwd", "/nowhere", "--", "ls")
	require.Error(t, err)
}

func TestExplain(t *testing.T) {
	out, _, err := execute(t, "explain", "ls")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ls - "), out)
	assert.Contains(t, out, "Usage: ls [OPTION] [FILE]")

	out, _, err = execute(t, "explain")
	require.NoError(t, err)
	assert.Contains(t, out, strings.Join(commands.Names(), "  "))

	_, _, err = execute(t, "explain", "nosuchcmd")
	require.Error(t, err)
}

func TestLevelsShow(t *testing.T) {
	out, _, err := execute(t, "levels", "show", "1")
	require.NoError(t, err)
	lvl, err := levels.Get(1)
	require.NoError(t, err)
	assert.Contains(t, out, "Level 1: "+lvl.Title)
	for _, ex := range lvl.Exercises {
		assert.Contains(t, out, ex.Instruction)
	}

	_, _, err = execute(t, "levels", "show", "99")
	require.ErrorIs(t, err, levels.ErrNotFound)
}

func TestPrintLevels(t *testing.T) {
	var buf bytes.Buffer
	printLevels(&buf, map[int]bool{1: true})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, levels.Count()+2)
	assert.Contains(t, lines[2], levels.StateCompleted.Label())
	assert.Contains(t, lines[3], levels.StateAvailable.Label())
	assert.Contains(t, lines[4], levels.StateLocked.Label())
}

func TestWriteCertificate(t *testing.T) {
	rec := badge.Record{Earned: true, Holder: "Ada", IssuedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), CertID: "LDM-1"}
	out := filepath.Join(t.TempDir(), "cert.html")

	path, err := writeCertificate(out, rec)
	require.NoError(t, err)
	assert.Equal(t, out, path)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ada")
}
