package assistant

import "context"

// Engine is the capability shared by the local rule engine and the external model adapter.
// Implementations must be safe for concurrent use.
type Engine interface {
	ParseFreeText(ctx context.Context, text string) (TaskDraft, error)
	ClassifyPriority(ctx context.Context, snap TaskSnapshot) (PrioritySuggestion, error)
	PlanSchedule(ctx context.Context, snap TaskSnapshot) (ScheduleSuggestion, error)
}

// UseCase is the assistant provider used by the task domain.
// Every operation is total: it always returns a result.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Parse(ctx context.Context, text string) TaskDraft
	SuggestPriority(ctx context.Context, snap TaskSnapshot) PrioritySuggestion
	SuggestSchedule(ctx context.Context, snap TaskSnapshot) ScheduleSuggestion
	Summarize(ctx context.Context, snap TaskSnapshot) string
	Mode() Mode
}
