package llm

import (
	"context"
	"time"

	"github.com/abhisek/linuxlearn/internal/logger"
)

type logged struct {
	inner Provider
	log   *logger.Logger
}

// WithLogging writes one line per request: info on success, warn on
// failure. Prompt and reply text appear only at debug level.
func WithLogging(p Provider, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &logged{inner: p, log: log}
}

func (l *logged) Generate(ctx context.Context, p Prompt) (*Reply, error) {
	start := time.Now()
	reply, err := l.inner.Generate(ctx, p)
	kv := []any{
		"purpose", PurposeFrom(ctx),
		"model", l.inner.ModelID(),
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if p.Schema != nil {
		kv = append(kv, "schema", p.Schema.Name)
	}
	if err != nil {
		l.log.Warn("llm request failed", append(kv, "error", err)...)
		return nil, err
	}
	l.log.Info("llm request", append(kv, "served_by", reply.Model, "tokens_in", reply.Tokens.In, "tokens_out", reply.Tokens.Out)...)
	l.log.Debug("llm exchange", "user", p.User, "reply", string(reply.JSON))
	return reply, nil
}

func (l *logged) ModelID() string { return l.inner.ModelID() }

type deadline struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout gives each call, retries included, its own deadline. A
// non-positive timeout returns p unchanged.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &deadline{inner: p, timeout: timeout}
}

func (d *deadline) Generate(ctx context.Context, p Prompt) (*Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return d.inner.Generate(ctx, p)
}

func (d *deadline) ModelID() string { return d.inner.ModelID() }
