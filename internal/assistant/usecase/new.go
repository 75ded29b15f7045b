package usecase

import (
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/internal/assistant/local"
	pkgLog "task-assistant/pkg/log"
)

// DefaultExternalTimeout bounds a single external call when no timeout is configured.
const DefaultExternalTimeout = 15 * time.Second

type implUseCase struct {
	l        pkgLog.Logger
	local    *local.Engine
	external assistant.Engine
	timeout  time.Duration
	mode     assistant.Mode
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the assistant UseCase. The strategy is fixed here: with a non-nil external
// engine every call tries it first and falls back to local; otherwise only local runs.
func New(
	l pkgLog.Logger,
	localEngine *local.Engine,
	external assistant.Engine,
	timeout time.Duration,
) *implUseCase {
	if localEngine == nil {
		localEngine = local.New()
	}
	if timeout <= 0 {
		timeout = DefaultExternalTimeout
	}

	mode := assistant.ModeLocalOnly
	if external != nil {
		mode = assistant.ModeExternalPreferred
	}

	return &implUseCase{
		l:        l,
		local:    localEngine,
		external: external,
		timeout:  timeout,
		mode:     mode,
	}
}

// Mode reports the strategy selected at construction.
func (uc *implUseCase) Mode() assistant.Mode {
	return uc.mode
}
