package task

import (
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
)

// MaxDescriptionLength is the longest description, in runes, a task stores.
const MaxDescriptionLength = 2000

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    model.Priority
	Status      string
}

type ListInput struct {
	Status   string
	Priority model.Priority
	Limit    int
	Offset   int
}

// UpdateInput is a partial update: nil fields keep their current value.
type UpdateInput struct {
	ID           int64
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	Priority     *model.Priority
	Status       *string
}

type ChatInput struct {
	Message   string
	Automated bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}

type ParseOutput struct {
	Draft assistant.TaskDraft
}

type CreateFromTextOutput struct {
	Task  model.Task
	Draft assistant.TaskDraft
}

type SuggestPriorityOutput struct {
	TaskID     int64
	Suggestion assistant.PrioritySuggestion
}

type SuggestScheduleOutput struct {
	TaskID     int64
	Suggestion assistant.ScheduleSuggestion
}

type SummaryOutput struct {
	TaskID  int64
	Summary string
}

// ChatAction is what the agent did with a chat message.
type ChatAction string

const (
	ChatActionCreated       ChatAction = "created"
	ChatActionSuggestCreate ChatAction = "suggest_create"
	ChatActionNone          ChatAction = "none"
)

const (
	ChatExplanationCreated  = "Task created by agent"
	ChatExplanationDisabled = "Agentic behavior is disabled; set ENABLE_AGENTIC_BEHAVIOR to enable automated actions or pass automated=true"
)

type ChatOutput struct {
	Action        ChatAction
	Task          *model.Task
	SuggestedTask *assistant.TaskDraft
	Summary       string
	Explanation   string
}
