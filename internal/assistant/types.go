package assistant

import (
	"time"

	"task-assistant/internal/model"
)

// MaxTitleLength is the maximum number of characters (runes) in a task title.
const MaxTitleLength = 100

// UntitledTask is the title used when nothing usable is left after parsing.
const UntitledTask = "Untitled task"

// TaskDraft is the structured result of parsing free text. It is the input of task creation.
type TaskDraft struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    *model.Priority
}

// TaskSnapshot is a read-only view of a task's current fields, used for suggestions and summaries.
type TaskSnapshot struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    model.Priority
	Status      string
}

// SnapshotFromTask builds a snapshot of a persisted task.
func SnapshotFromTask(t model.Task) TaskSnapshot {
	return TaskSnapshot{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority.OrDefault(),
		Status:      t.Status,
	}
}

// PrioritySuggestion is a suggested priority with a confidence in [0,1].
type PrioritySuggestion struct {
	Priority    model.Priority
	Confidence  float64
	Explanation string
}

// ScheduleSuggestion is a suggested work window. SuggestedEnd may be nil.
type ScheduleSuggestion struct {
	SuggestedStart time.Time
	SuggestedEnd   *time.Time
	Explanation    string
}

// Mode is the strategy a provider selected at construction.
type Mode string

const (
	ModeLocalOnly         Mode = "local_only"
	ModeExternalPreferred Mode = "external_preferred"
)
