package usecase

import (
	"context"
	"strings"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

// Chat interprets a message as a create-task intent.
//
// A draft with a real title is created when agentic behavior is enabled or the caller
// passed automated=true; otherwise it is only suggested. A message that yields no
// title is summarized instead.
func (uc *implUseCase) Chat(ctx context.Context, input task.ChatInput) (task.ChatOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return task.ChatOutput{}, task.ErrEmptyMessage
	}

	draft := uc.assistant.Parse(ctx, msg)

	if draft.Title == "" || draft.Title == assistant.UntitledTask {
		return task.ChatOutput{
			Action: task.ChatActionNone,
			Summary: uc.assistant.Summarize(ctx, assistant.TaskSnapshot{
				Title:    msg,
				Priority: model.DefaultPriority,
				Status:   model.DefaultStatus,
			}),
		}, nil
	}

	if !uc.agentic && !input.Automated {
		return task.ChatOutput{
			Action:        task.ChatActionSuggestCreate,
			SuggestedTask: &draft,
			Explanation:   task.ChatExplanationDisabled,
		}, nil
	}

	t, err := uc.createFromDraft(ctx, draft)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat createFromDraft: %v", err)
		return task.ChatOutput{}, err
	}
	uc.l.Infof(ctx, "uc.Chat: created task id=%d automated=%t", t.ID, input.Automated)

	return task.ChatOutput{
		Action:      task.ChatActionCreated,
		Task:        &t,
		Explanation: task.ChatExplanationCreated,
	}, nil
}
