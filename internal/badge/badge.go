// Package badge issues and reads the Linux Dragon Master badge record.
package badge

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/linuxlearn/internal/logger"
	"github.com/abhisek/linuxlearn/internal/store"
)

// Name is the badge title.
const Name = "Linux Dragon Master"

// PassingScore is the minimum exam percentage that earns the badge.
const PassingScore = 90

// Record is the persisted badge state.
type Record struct {
	Earned   bool
	Holder   string
	IssuedAt time.Time
	CertID   string
}

// DisplayName returns the holder, or a placeholder when none was given.
func (r Record) DisplayName() string {
	if r.Holder == "" {
		return "Your Name Here"
	}
	return r.Holder
}

// Service reads and writes the badge keys.
type Service struct {
	store store.Store
	log   *logger.Logger
	now   func() time.Time
	intn  func(int) int
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the issue time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand pins the certificate ID source.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.intn = r.IntN }
}

// NewService creates a Service. A nil logger discards output.
func NewService(st store.Store, log *logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{store: st, log: log, now: time.Now, intn: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue grants the badge. A blank holder leaves any stored name untouched.
// Re-issuing keeps the original certificate ID and issue time.
func (s *Service) Issue(ctx context.Context, holder string) (Record, error) {
	rec, err := s.Load(ctx)
	if err != nil {
		return Record{}, err
	}
	if holder = strings.TrimSpace(holder); holder != "" {
		rec.Holder = holder
		if err := s.store.Set(ctx, store.KeyBadgeHolderName, holder); err != nil {
			return Record{}, fmt.Errorf("save badge holder: %w", err)
		}
	}
	if !rec.Earned || rec.CertID == "" {
		rec.CertID = s.newCertID()
		rec.IssuedAt = s.now().UTC().Truncate(time.Second)
		if err := s.store.Set(ctx, store.KeyBadgeCertID, rec.CertID); err != nil {
			return Record{}, fmt.Errorf("save certificate id: %w", err)
		}
		if err := s.store.Set(ctx, store.KeyBadgeIssuedAt, rec.IssuedAt.Format(time.RFC3339)); err != nil {
			return Record{}, fmt.Errorf("save issue time: %w", err)
		}
	}
	rec.Earned = true
	if err := store.SetFlag(ctx, s.store, store.KeyHasBadge, true); err != nil {
		return Record{}, fmt.Errorf("save badge flag: %w", err)
	}
	s.log.Info("badge issued", "cert_id", rec.CertID)
	return rec, nil
}

// Load reads the badge record. An unparseable issue time is dropped.
func (s *Service) Load(ctx context.Context) (Record, error) {
	var rec Record
	earned, err := store.GetFlag(ctx, s.store, store.KeyHasBadge)
	if err != nil {
		return Record{}, fmt.Errorf("load badge flag: %w", err)
	}
	rec.Earned = earned

	for key, dst := range map[string]*string{
		store.KeyBadgeHolderName: &rec.Holder,
		store.KeyBadgeCertID:     &rec.CertID,
	} {
		v, _, err := s.store.Get(ctx, key)
		if err != nil {
			return Record{}, fmt.Errorf("load %s: %w", key, err)
		}
		*dst = v
	}

	raw, ok, err := s.store.Get(ctx, store.KeyBadgeIssuedAt)
	if err != nil {
		return Record{}, fmt.Errorf("load issue time: %w", err)
	}
	if ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			rec.IssuedAt = t
		} else {
			s.log.Warn("ignoring malformed badge issue time", "value", raw)
		}
	}
	return rec, nil
}

// Clear removes every badge key.
func (s *Service) Clear(ctx context.Context) error {
	for _, k := range []string{store.KeyHasBadge, store.KeyBadgeHolderName, store.KeyBadgeIssuedAt, store.KeyBadgeCertID} {
		if err := s.store.Remove(ctx, k); err != nil {
			return fmt.Errorf("clear %s: %w", k, err)
		}
	}
	return nil
}

const certAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newCertID returns "LDM-" followed by eight base-36 characters.
func (s *Service) newCertID() string {
	var b strings.Builder
	b.WriteString("LDM-")
	for range 8 {
		b.WriteByte(certAlphabet[s.intn(len(certAlphabet))])
	}
	return b.String()
}
