package external

import (
	"fmt"
	"strings"
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/pkg/response"
)

const parseSystemPrompt = `You are a task parsing assistant. Extract ONE task from the user's text.

Return ONLY a JSON object with these fields:
- "title": short task title without the date phrase (required, at most 100 characters)
- "description": extra details, or null
- "due_date": RFC3339 UTC timestamp or "YYYY-MM-DD", or null when no due date is stated
- "priority": one of "high", "medium", "low", or null when not stated

No markdown, no code blocks, no explanation text.`

const prioritySystemPrompt = `You are a task prioritization assistant. Suggest a priority for the task.

Return ONLY a JSON object with these fields:
- "priority": one of "high", "medium", "low"
- "confidence": number between 0 and 1
- "explanation": one short sentence

No markdown, no code blocks, no explanation text.`

const scheduleSystemPrompt = `You are a scheduling assistant. Suggest when to start working on the task.

Return ONLY a JSON object with these fields:
- "suggested_start": RFC3339 UTC timestamp (required)
- "suggested_end": RFC3339 UTC timestamp, or null
- "explanation": one short sentence

No markdown, no code blocks, no explanation text.`

func buildParsePrompt(text string, now time.Time) string {
	return fmt.Sprintf("%s\n\nTEXT:\n%s", buildTimeContext(now), text)
}

func buildSnapshotPrompt(snap assistant.TaskSnapshot, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CURRENT TIME (UTC): %s\n\nTASK:\n", now.Format(time.RFC3339))
	fmt.Fprintf(&sb, "title: %s\n", snap.Title)
	if snap.Description != nil && *snap.Description != "" {
		fmt.Fprintf(&sb, "description: %s\n", *snap.Description)
	}
	if snap.DueDate != nil {
		fmt.Fprintf(&sb, "due_date: %s\n", snap.DueDate.UTC().Format(response.DateTimeFormat))
	} else {
		sb.WriteString("due_date: none\n")
	}
	fmt.Fprintf(&sb, "priority: %s\n", snap.Priority.OrDefault())
	if snap.Status != "" {
		fmt.Fprintf(&sb, "status: %s\n", snap.Status)
	}
	return sb.String()
}
