package exam

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/linuxlearn/internal/badge"
	"github.com/abhisek/linuxlearn/internal/levels"
	"github.com/abhisek/linuxlearn/internal/logger"
	"github.com/abhisek/linuxlearn/internal/progress"
	"github.com/abhisek/linuxlearn/internal/store"
)

var (
	// ErrLocked is returned when the exam is started before every level is
	// complete.
	ErrLocked = errors.New("exam locked")

	// ErrSubmitted is returned when an attempt is used after submission.
	ErrSubmitted = errors.New("exam already submitted")

	// ErrUnknownQuestion is returned for answers to IDs outside the set.
	ErrUnknownQuestion = errors.New("unknown question")
)

// ProgressReader loads level progress.
type ProgressReader interface {
	Load(ctx context.Context) (progress.State, error)
}

// BadgeIssuer grants the badge.
type BadgeIssuer interface {
	Issue(ctx context.Context, holder string) (badge.Record, error)
}

// Gate reports how close the learner is to unlocking the exam.
type Gate struct {
	Completed int
	Total     int
}

// Unlocked reports whether every level is complete.
func (g Gate) Unlocked() bool { return g.Completed >= g.Total }

func (g Gate) String() string { return fmt.Sprintf("%d/%d", g.Completed, g.Total) }

// Result is a graded attempt.
type Result struct {
	Score   int
	Earned  int
	Max     int
	Correct map[int]bool
	Passed  bool
	Badge   *badge.Record
}

// Status is the persisted outcome of the last submitted exam.
type Status struct {
	Score     int
	Completed bool
}

// Engine gates, grades and records exams.
type Engine struct {
	store    store.Store
	progress ProgressReader
	badges   BadgeIssuer
	log      *logger.Logger
}

// NewEngine creates an Engine. A nil logger discards output.
func NewEngine(st store.Store, prog ProgressReader, badges BadgeIssuer, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{store: st, progress: prog, badges: badges, log: log}
}

// Gate reports level completion against the catalogue size.
func (e *Engine) Gate(ctx context.Context) (Gate, error) {
	state, err := e.progress.Load(ctx)
	if err != nil {
		return Gate{}, err
	}
	return Gate{Completed: state.CompletedCount(), Total: levels.Count()}, nil
}

// Start opens a new attempt, or returns ErrLocked.
func (e *Engine) Start(ctx context.Context) (*Attempt, error) {
	g, err := e.Gate(ctx)
	if err != nil {
		return nil, err
	}
	if !g.Unlocked() {
		return nil, fmt.Errorf("%w: %s levels completed", ErrLocked, g)
	}
	return &Attempt{engine: e, questions: Questions(), answers: make(map[int]string)}, nil
}

// Status reads the last recorded exam outcome.
func (e *Engine) Status(ctx context.Context) (Status, error) {
	score, _, err := store.GetInt(ctx, e.store, store.KeyExamScore)
	if err != nil && !errors.Is(err, store.ErrMalformed) {
		return Status{}, fmt.Errorf("load exam score: %w", err)
	}
	done, err := store.GetFlag(ctx, e.store, store.KeyExamCompleted)
	if err != nil {
		return Status{}, fmt.Errorf("load exam completion: %w", err)
	}
	return Status{Score: score, Completed: done}, nil
}

func (e *Engine) record(ctx context.Context, res *Result, holder string) error {
	if err := store.SetInt(ctx, e.store, store.KeyExamScore, res.Score); err != nil {
		return fmt.Errorf("save exam score: %w", err)
	}
	if err := store.SetFlag(ctx, e.store, store.KeyExamCompleted, true); err != nil {
		return fmt.Errorf("save exam completion: %w", err)
	}
	e.log.Info("exam submitted", "score", res.Score, "passed", res.Passed)
	if !res.Passed {
		return nil
	}
	rec, err := e.badges.Issue(ctx, holder)
	if err != nil {
		return fmt.Errorf("issue badge: %w", err)
	}
	res.Badge = &rec
	return nil
}

// Attempt is one pass through the questions. It is not persisted.
type Attempt struct {
	engine    *Engine
	questions []Question
	index     int
	answers   map[int]string
	submitted bool
}

// Len returns the number of questions.
func (a *Attempt) Len() int { return len(a.questions) }

// Current returns the active index and question.
func (a *Attempt) Current() (int, Question) {
	return a.index, a.questions[a.index]
}

// Next moves forward and reports whether it moved.
func (a *Attempt) Next() bool {
	if a.index >= len(a.questions)-1 {
		return false
	}
	a.index++
	return true
}

// Prev moves back and reports whether it moved.
func (a *Attempt) Prev() bool {
	if a.index == 0 {
		return false
	}
	a.index--
	return true
}

// Answer records value for question id, replacing any earlier answer.
func (a *Attempt) Answer(id int, value string) error {
	if a.submitted {
		return ErrSubmitted
	}
	for _, q := range a.questions {
		if q.ID() == id {
			a.answers[id] = value
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
}

// Answered returns the recorded answer for id.
func (a *Attempt) Answered(id int) (string, bool) {
	v, ok := a.answers[id]
	return v, ok
}

// AnsweredCount returns how many questions have an answer.
func (a *Attempt) AnsweredCount() int { return len(a.answers) }

// Submit grades the attempt, persists the score and completion flag, and
// issues the badge when the score reaches badge.PassingScore.
func (a *Attempt) Submit(ctx context.Context, holder string) (Result, error) {
	if a.submitted {
		return Result{}, ErrSubmitted
	}
	res := Result{Correct: make(map[int]bool, len(a.questions)), Max: MaxPoints()}
	for _, q := range a.questions {
		if v, ok := a.answers[q.ID()]; ok && q.Grade(v) {
			res.Correct[q.ID()] = true
			res.Earned += q.Points()
		}
	}
	res.Score = Score(a.answers)
	res.Passed = res.Score >= badge.PassingScore
	if err := a.engine.record(ctx, &res, strings.TrimSpace(holder)); err != nil {
		return Result{}, err
	}
	a.submitted = true
	return res, nil
}
