package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/linuxlearn/internal/llm"
	"github.com/abhisek/linuxlearn/internal/logger"
)

// ErrDisabled is returned when no provider is configured.
var ErrDisabled = errors.New("tutor is disabled: no LLM provider configured")

// Result is a finished asynchronous request.
type Result struct {
	Explanation *Explanation
	Err         error
}

// Service explains wrong submissions. A Service with a nil provider is valid
// and reports itself disabled.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger

	mu      sync.Mutex
	latest  string
	pending *Result
}

func NewService(provider llm.Provider, cfg Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// Enabled reports whether explanations can be requested.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// Model returns the provider's model ID, or "" when disabled.
func (s *Service) Model() string {
	if !s.Enabled() {
		return ""
	}
	return s.provider.ModelID()
}

type explanationOutput struct {
	Explanation      string `json:"explanation"`
	Tip              string `json:"tip"`
	SuggestedCommand string `json:"suggested_command"`
}

// Explain asks the provider about one submission and waits for the answer.
func (s *Service) Explain(ctx context.Context, in Input) (*Explanation, error) {
	return s.explain(ctx, uuid.NewString(), in)
}

func (s *Service) explain(ctx context.Context, id string, in Input) (*Explanation, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	if strings.TrimSpace(in.Submitted) == "" {
		return nil, fmt.Errorf("explain: empty submission")
	}

	ctx = llm.WithPurpose(ctx, "explain-mistake")
	resp, err := s.provider.Generate(ctx, llm.Prompt{
		System:      systemPrompt,
		User:        buildUserMessage(in, s.cfg),
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("explain level %d: %w", in.Level.ID, err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.JSON, &out); err != nil {
		return nil, fmt.Errorf("parse explanation: %w", err)
	}

	suggested := strings.TrimSpace(out.SuggestedCommand)
	if !mayReveal(in, s.cfg) && sameCommand(suggested, in.Exercise.ExpectedCommand) {
		suggested = ""
	}

	return &Explanation{
		RequestID:        id,
		LevelID:          in.Level.ID,
		Exercise:         in.Exercise.Instruction,
		Explanation:      strings.TrimSpace(out.Explanation),
		Tip:              strings.TrimSpace(out.Tip),
		SuggestedCommand: suggested,
	}, nil
}

func sameCommand(a, b string) bool {
	return a != "" && strings.EqualFold(strings.Join(strings.Fields(a), " "), strings.Join(strings.Fields(b), " "))
}

// RequestExplanation starts Explain in the background and returns its
// request ID. Only the most recent request is kept; older results are
// dropped when they arrive.
func (s *Service) RequestExplanation(ctx context.Context, in Input) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.latest = id
	s.pending = nil
	s.mu.Unlock()

	go func() {
		exp, err := s.explain(ctx, id, in)
		if err != nil {
			s.log.Warn("tutor request failed", "request_id", id, "level", in.Level.ID, "error", err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.latest != id {
			return
		}
		s.pending = &Result{Explanation: exp, Err: err}
	}()

	return id
}

// Consume returns the result of the latest request once it is ready and
// clears the slot.
func (s *Service) Consume() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return Result{}, false
	}
	r := *s.pending
	s.pending = nil
	s.latest = ""
	return r, true
}

// Pending reports whether a request is in flight or waiting to be consumed.
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest != ""
}
