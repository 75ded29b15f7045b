package task

import "context"

// UseCase defines the business logic interface for the task domain.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id int64) error

	// Parse turns free text into a draft without persisting it.
	Parse(ctx context.Context, text string) (ParseOutput, error)
	// CreateFromText parses free text and persists the resulting task.
	CreateFromText(ctx context.Context, text string) (CreateFromTextOutput, error)

	SuggestPriority(ctx context.Context, id int64) (SuggestPriorityOutput, error)
	SuggestSchedule(ctx context.Context, id int64) (SuggestScheduleOutput, error)
	Summarize(ctx context.Context, id int64) (SummaryOutput, error)

	// Chat interprets a message and, when permitted, creates a task from it.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
}
