package agenda

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Job defines the work that should be executed by the scheduler.
type Job func(context.Context) error

// DefaultParser provides standard cron parsing support including optional seconds
// and predefined descriptors such as "@daily".
var DefaultParser = cron.NewParser(
	cron.SecondOptional |
		cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow |
		cron.Descriptor,
)

// Engine orchestrates the execution of a job according to a cron expression.
// The API runs two of these: the hosted-database keep-alive ping and the
// reaction tally reconciliation.
type Engine struct {
	cron        *cron.Cron
	expression  string
	job         Job
	logger      *slog.Logger
	jobTimeout  time.Duration
	started     bool
	startStopMu sync.Mutex
	entryID     cron.EntryID
}

// EngineOption configures the scheduler engine.
type EngineOption func(*Engine)

// WithEngineCron injects a preconfigured cron engine to use for scheduling.
func WithEngineCron(c *cron.Cron) EngineOption {
	return func(s *Engine) {
		if c != nil {
			s.cron = c
		}
	}
}

// WithEngineLogger overrides the scheduler logger.
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(s *Engine) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEngineJobTimeout configures a timeout applied to each job execution.
func WithEngineJobTimeout(timeout time.Duration) EngineOption {
	return func(s *Engine) {
		if timeout > 0 {
			s.jobTimeout = timeout
		}
	}
}

// New creates a scheduler for the provided cron expression and job.
func New(expression string, job Job, opts ...EngineOption) (*Engine, error) {
	if expression == "" {
		return nil, errors.New("cron expression cannot be empty")
	}

	if job == nil {
		return nil, errors.New("job cannot be nil")
	}

	if _, err := DefaultParser.Parse(expression); err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}

	scheduler := &Engine{
		expression: expression,
		job:        job,
		logger:     slog.Default(),
		jobTimeout: 0,
	}

	for _, opt := range opts {
		opt(scheduler)
	}

	if scheduler.cron == nil {
		scheduler.cron = cron.New(cron.WithParser(DefaultParser))
	}

	return scheduler, nil
}

// Start schedules the job according to the configured cron expression.
func (s *Engine) Start(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	s.startStopMu.Lock()
	defer s.startStopMu.Unlock()

	if s.started {
		return errors.New("scheduler already started")
	}

	job := func() {
		if err := s.Run(ctx); err != nil {
			s.logger.Error("scheduled job failed", "error", err)
		}
	}

	entryID, err := s.cron.AddFunc(s.expression, job)
	if err != nil {
		return fmt.Errorf("schedule job: %w", err)
	}

	s.entryID = entryID
	s.started = true
	s.cron.Start()

	s.logger.Info("scheduler started", "expression", s.expression)

	return nil
}

// Run executes the job once, applying the configured timeout when set.
func (s *Engine) Run(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	runCtx := ctx
	if s.jobTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.jobTimeout)
		defer cancel()
	}

	return s.job(runCtx)
}

// Stop halts the scheduler and removes the registered job.
func (s *Engine) Stop() {
	if s == nil {
		return
	}

	s.startStopMu.Lock()
	defer s.startStopMu.Unlock()

	if !s.started {
		return
	}

	s.cron.Remove(s.entryID)
	s.cron.Stop()
	s.started = false

	s.logger.Info("scheduler stopped", "expression", s.expression)
}
