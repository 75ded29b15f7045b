package external

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
	"task-assistant/pkg/llmprovider"
)

type draftPayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
}

type priorityPayload struct {
	Priority    string   `json:"priority"`
	Confidence  *float64 `json:"confidence"`
	Explanation string   `json:"explanation"`
}

type schedulePayload struct {
	SuggestedStart string  `json:"suggested_start"`
	SuggestedEnd   *string `json:"suggested_end"`
	Explanation    string  `json:"explanation"`
}

// ParseFreeText asks the model to extract a draft from text.
func (a *Adapter) ParseFreeText(ctx context.Context, text string) (assistant.TaskDraft, error) {
	var payload draftPayload
	if err := a.generate(ctx, parseSystemPrompt, buildParsePrompt(text, a.now()), &payload); err != nil {
		return assistant.TaskDraft{}, err
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" || utf8.RuneCountInString(title) > assistant.MaxTitleLength {
		return assistant.TaskDraft{}, fmt.Errorf("%w: %q", ErrInvalidTitle, payload.Title)
	}

	draft := assistant.TaskDraft{Title: title}

	if payload.Description != nil && strings.TrimSpace(*payload.Description) != "" {
		desc := strings.TrimSpace(*payload.Description)
		draft.Description = &desc
	}

	due, err := parseOptionalTimestamp(payload.DueDate)
	if err != nil {
		return assistant.TaskDraft{}, err
	}
	draft.DueDate = due

	if payload.Priority != nil && *payload.Priority != "" {
		p, ok := model.ParsePriority(*payload.Priority)
		if !ok {
			return assistant.TaskDraft{}, fmt.Errorf("%w: %q", ErrInvalidPriority, *payload.Priority)
		}
		draft.Priority = &p
	}

	return draft, nil
}

// ClassifyPriority asks the model for a priority with a confidence.
func (a *Adapter) ClassifyPriority(ctx context.Context, snap assistant.TaskSnapshot) (assistant.PrioritySuggestion, error) {
	var payload priorityPayload
	if err := a.generate(ctx, prioritySystemPrompt, buildSnapshotPrompt(snap, a.now()), &payload); err != nil {
		return assistant.PrioritySuggestion{}, err
	}

	p, ok := model.ParsePriority(payload.Priority)
	if !ok {
		return assistant.PrioritySuggestion{}, fmt.Errorf("%w: %q", ErrInvalidPriority, payload.Priority)
	}
	if payload.Confidence == nil || *payload.Confidence < 0 || *payload.Confidence > 1 {
		return assistant.PrioritySuggestion{}, ErrInvalidConfidence
	}

	return assistant.PrioritySuggestion{
		Priority:    p,
		Confidence:  *payload.Confidence,
		Explanation: strings.TrimSpace(payload.Explanation),
	}, nil
}

// PlanSchedule asks the model for a work window.
func (a *Adapter) PlanSchedule(ctx context.Context, snap assistant.TaskSnapshot) (assistant.ScheduleSuggestion, error) {
	var payload schedulePayload
	if err := a.generate(ctx, scheduleSystemPrompt, buildSnapshotPrompt(snap, a.now()), &payload); err != nil {
		return assistant.ScheduleSuggestion{}, err
	}

	start, err := parseTimestamp(payload.SuggestedStart)
	if err != nil {
		return assistant.ScheduleSuggestion{}, err
	}
	end, err := parseOptionalTimestamp(payload.SuggestedEnd)
	if err != nil {
		return assistant.ScheduleSuggestion{}, err
	}
	if end != nil && end.Before(start) {
		return assistant.ScheduleSuggestion{}, fmt.Errorf("%w: end before start", ErrInvalidTimestamp)
	}

	return assistant.ScheduleSuggestion{
		SuggestedStart: start,
		SuggestedEnd:   end,
		Explanation:    strings.TrimSpace(payload.Explanation),
	}, nil
}

func (a *Adapter) generate(ctx context.Context, system, prompt string, out any) error {
	sys := llmprovider.NewTextMessage("system", system)
	resp, err := a.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &sys,
		Messages:          []llmprovider.Message{llmprovider.NewTextMessage("user", prompt)},
		Temperature:       0.2,
		JSONOutput:        true,
	})
	if err != nil {
		return err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return llmprovider.ErrEmptyResponse
	}
	if err := decodeJSON(text, out); err != nil {
		a.l.Debugf(ctx, "external.generate: undecodable model output %q", text)
		return err
	}
	return nil
}
