package usecase

import (
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/internal/task/repository"
	"task-assistant/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	assistant assistant.UseCase
	agentic   bool
	clock     func() time.Time
}

// Option configures the use case.
type Option func(*implUseCase)

// WithAgenticBehavior lets Chat create tasks without an explicit automated flag.
func WithAgenticBehavior(enabled bool) Option {
	return func(uc *implUseCase) {
		uc.agentic = enabled
	}
}

// WithClock overrides the time source used for created_at.
func WithClock(clock func() time.Time) Option {
	return func(uc *implUseCase) {
		if clock != nil {
			uc.clock = clock
		}
	}
}

// New creates a new task UseCase implementation.
func New(l log.Logger, repo repository.Repository, assistantUC assistant.UseCase, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:         l,
		repo:      repo,
		assistant: assistantUC,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
