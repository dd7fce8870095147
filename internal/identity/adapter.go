package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/linuxlearn/internal/logger"
	"github.com/abhisek/linuxlearn/internal/store"
)

// DefaultSyncInterval is how often an active session is archived.
const DefaultSyncInterval = 30 * time.Second

// Adapter ties the active progress keys to the signed-in identity. It is
// safe for concurrent use; a background loop archives progress while a
// session is active.
type Adapter struct {
	store    store.Store
	log      *logger.Logger
	interval time.Duration

	mu      sync.Mutex
	current *Identity
	cancel  context.CancelFunc
	done    chan struct{}
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithSyncInterval sets the archive period. Non-positive values keep the
// default.
func WithSyncInterval(d time.Duration) Option {
	return func(a *Adapter) {
		if d > 0 {
			a.interval = d
		}
	}
}

// NewAdapter creates an Adapter with no active session.
func NewAdapter(st store.Store, log *logger.Logger, opts ...Option) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	a := &Adapter{store: st, log: log, interval: DefaultSyncInterval}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Current returns a copy of the active identity, or nil.
func (a *Adapter) Current() *Identity {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	id := *a.current
	return &id
}

// Login activates id, overlays its archived snapshot onto the active
// progress keys when one exists, and starts the sync loop.
func (a *Adapter) Login(ctx context.Context, id Identity) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != nil {
		if err := a.syncLocked(ctx); err != nil {
			return err
		}
		a.stopLocked()
	}
	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := a.store.Set(ctx, store.KeyCurrentUser, string(raw)); err != nil {
		return fmt.Errorf("save current user: %w", err)
	}
	if err := a.store.Set(ctx, store.KeyIsLoggedIn, store.True); err != nil {
		return fmt.Errorf("save login flag: %w", err)
	}
	if err := a.restoreSnapshot(ctx, id); err != nil {
		return err
	}
	a.activateLocked(ctx, id)
	a.log.Info("logged in", "identity", id.ID)
	return nil
}

// Restore resumes a saved login. It returns nil when no one is signed in
// or the saved identity is unreadable.
func (a *Adapter) Restore(ctx context.Context) (*Identity, error) {
	loggedIn, err := store.GetFlag(ctx, a.store, store.KeyIsLoggedIn)
	if err != nil {
		return nil, fmt.Errorf("load login flag: %w", err)
	}
	if !loggedIn {
		return nil, nil
	}
	var id Identity
	ok, err := store.GetJSON(ctx, a.store, store.KeyCurrentUser, &id)
	switch {
	case errors.Is(err, store.ErrMalformed):
		a.log.Warn("ignoring malformed current user", "error", err)
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("load current user: %w", err)
	case !ok || id.ID == "":
		return nil, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
	if err := a.restoreSnapshot(ctx, id); err != nil {
		return nil, err
	}
	a.activateLocked(ctx, id)
	a.log.Info("session restored", "identity", id.ID)
	return &id, nil
}

// Logout archives the active session, clears the session and progress
// keys, and stops the sync loop. The archived snapshot is kept.
func (a *Adapter) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != nil {
		if err := a.syncLocked(ctx); err != nil {
			return err
		}
	}
	a.stopLocked()
	prev := a.current
	a.current = nil

	keys := append([]string{store.KeyCurrentUser, store.KeyIsLoggedIn}, store.ActiveProgressKeys()...)
	for _, k := range keys {
		if err := a.store.Remove(ctx, k); err != nil {
			return fmt.Errorf("clear %s: %w", k, err)
		}
	}
	if prev != nil {
		a.log.Info("logged out", "identity", prev.ID)
	}
	return nil
}

// Sync archives the active progress keys for the signed-in identity. It
// does nothing when no one is signed in.
func (a *Adapter) Sync(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.syncLocked(ctx)
}

// Close stops the sync loop and waits for it to exit. The session stays
// signed in.
func (a *Adapter) Close() {
	a.mu.Lock()
	done := a.done
	a.stopLocked()
	a.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (a *Adapter) activateLocked(ctx context.Context, id Identity) {
	a.current = &id
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	a.cancel = cancel
	a.done = make(chan struct{})
	go a.loop(loopCtx, a.done)
}

func (a *Adapter) stopLocked() {
	if a.cancel != nil {
		a.cancel()
	}
	a.cancel = nil
	a.done = nil
}

func (a *Adapter) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	t := time.NewTicker(a.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			a.tick(ctx)
		}
	}
}

func (a *Adapter) tick(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	if err := a.syncLocked(ctx); err != nil {
		a.log.Warn("periodic sync failed", "error", err)
	}
}

func (a *Adapter) syncLocked(ctx context.Context) error {
	if a.current == nil {
		return nil
	}
	get := func(key string) (*string, error) {
		v, ok, err := a.store.Get(ctx, key)
		if err != nil || !ok {
			return nil, err
		}
		return &v, nil
	}

	snap := snapshot{Points: "0", CompletedLevels: "[]"}
	if v, err := get(store.KeyUserPoints); err != nil {
		return fmt.Errorf("sync points: %w", err)
	} else if v != nil {
		snap.Points = *v
	}
	if v, err := get(store.KeyCompletedLevels); err != nil {
		return fmt.Errorf("sync completed levels: %w", err)
	} else if v != nil {
		snap.CompletedLevels = *v
	}
	for key, dst := range map[string]**string{
		store.KeyExamScore:       &snap.ExamData.Score,
		store.KeyExamCompleted:   &snap.ExamData.Completed,
		store.KeyHasBadge:        &snap.ExamData.HasBadge,
		store.KeyBadgeHolderName: &snap.ExamData.BadgeHolderName,
		store.KeyBadgeIssuedAt:   &snap.ExamData.BadgeIssuedAt,
		store.KeyBadgeCertID:     &snap.ExamData.BadgeCertID,
	} {
		v, err := get(key)
		if err != nil {
			return fmt.Errorf("sync %s: %w", key, err)
		}
		*dst = v
	}
	if err := store.SetJSON(ctx, a.store, store.SnapshotKey(a.current.ID), snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	a.log.Debug("progress synced", "identity", a.current.ID)
	return nil
}

// restoreSnapshot overlays the archived progress for id. Without a
// readable snapshot the active keys are left as they are.
func (a *Adapter) restoreSnapshot(ctx context.Context, id Identity) error {
	raw, ok, err := a.store.Get(ctx, store.SnapshotKey(id.ID))
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if !ok {
		return nil
	}
	snap, err := decodeSnapshot(raw)
	if err != nil {
		a.log.Warn("ignoring malformed snapshot", "identity", id.ID, "error", err)
		return nil
	}

	writes := map[string]string{
		store.KeyUserPoints:      snap.Points,
		store.KeyCompletedLevels: snap.CompletedLevels,
	}
	for key, v := range map[string]*string{
		store.KeyExamScore:       snap.ExamData.Score,
		store.KeyExamCompleted:   snap.ExamData.Completed,
		store.KeyHasBadge:        snap.ExamData.HasBadge,
		store.KeyBadgeHolderName: snap.ExamData.BadgeHolderName,
		store.KeyBadgeIssuedAt:   snap.ExamData.BadgeIssuedAt,
		store.KeyBadgeCertID:     snap.ExamData.BadgeCertID,
	} {
		if v != nil && *v != "" {
			writes[key] = *v
		}
	}
	for key, v := range writes {
		if err := a.store.Set(ctx, key, v); err != nil {
			return fmt.Errorf("restore %s: %w", key, err)
		}
	}
	return nil
}
