package badge

import (
	"bytes"
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/linuxlearn/internal/store"
)

var fixedNow = time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)

func newTestService(mem store.Store) *Service {
	return NewService(mem, nil,
		WithClock(func() time.Time { return fixedNow }),
		WithRand(rand.New(rand.NewPCG(42, 42))),
	)
}

func TestIssue(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	svc := newTestService(mem)

	rec, err := svc.Issue(ctx, "  Ada Lovelace ")
	require.NoError(t, err)
	assert.True(t, rec.Earned)
	assert.Equal(t, "Ada Lovelace", rec.Holder)
	assert.True(t, fixedNow.Equal(rec.IssuedAt))
	assert.Regexp(t, regexp.MustCompile(`^LDM-[0-9A-Z]{8}$`), rec.CertID)

	raw, ok, err := mem.Get(ctx, store.KeyHasBadge)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", raw)

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec.CertID, loaded.CertID)
	assert.Equal(t, rec.Holder, loaded.Holder)
	assert.True(t, loaded.Earned)
	assert.True(t, rec.IssuedAt.Equal(loaded.IssuedAt))
}

func TestIssue_KeepsCertificateOnReissue(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	first, err := newTestService(mem).Issue(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, first.Holder)

	later := NewService(mem, nil, WithClock(func() time.Time { return fixedNow.Add(time.Hour) }))
	second, err := later.Issue(ctx, "Grace")
	require.NoError(t, err)
	assert.Equal(t, first.CertID, second.CertID)
	assert.True(t, first.IssuedAt.Equal(second.IssuedAt))
	assert.Equal(t, "Grace", second.Holder)
}

func TestIssue_BlankHolderNotWritten(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	_, err := newTestService(mem).Issue(ctx, "   ")
	require.NoError(t, err)
	_, ok, err := mem.Get(ctx, store.KeyBadgeHolderName)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadAndClear(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	svc := newTestService(mem)

	rec, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.False(t, rec.Earned)

	require.NoError(t, mem.Set(ctx, store.KeyBadgeIssuedAt, "yesterday"))
	rec, err = svc.Load(ctx)
	require.NoError(t, err)
	assert.True(t, rec.IssuedAt.IsZero())

	_, err = svc.Issue(ctx, "Linus")
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))
	assert.Zero(t, mem.Len())
}

func TestRenderCertificate(t *testing.T) {
	var buf bytes.Buffer
	rec := Record{Earned: true, Holder: "<Ada>", IssuedAt: fixedNow, CertID: "LDM-ABC12345"}
	require.NoError(t, RenderCertificate(&buf, rec))
	out := buf.String()
	assert.Contains(t, out, "Linux Dragon Master")
	assert.Contains(t, out, "LDM-ABC12345")
	assert.Contains(t, out, "&lt;Ada&gt;")
	assert.NotContains(t, out, "<Ada>")

	buf.Reset()
	require.NoError(t, RenderCertificate(&buf, Record{}))
	assert.Contains(t, buf.String(), "Your Name Here")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "linux-dragon-master-badge-certificate.html", FileName(Record{}))
	assert.Equal(t, "linux-dragon-master-badge-Ada-Lovelace.html", FileName(Record{Holder: "Ada Lovelace"}))
}

func TestExportCertificate(t *testing.T) {
	dir := t.TempDir()
	rec := Record{Earned: true, Holder: "Ada Lovelace", IssuedAt: fixedNow, CertID: "LDM-ABC12345"}

	path, err := ExportCertificate(dir, rec)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "linux-dragon-master-badge-Ada-Lovelace.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LDM-ABC12345")

	_, err = ExportCertificate(filepath.Join(dir, "missing"), rec)
	assert.Error(t, err)
}
