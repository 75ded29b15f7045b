package local

import (
	"strings"
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
)

const summarySeparator = " | "

// Summarize renders a one-line summary:
// "<title> | due YYYY-MM-DD | priority=<p> | status=<s>". The due part is omitted without a due date.
func Summarize(snap assistant.TaskSnapshot) string {
	parts := make([]string, 0, 4)
	parts = append(parts, snap.Title)
	if snap.DueDate != nil {
		parts = append(parts, "due "+snap.DueDate.UTC().Format(time.DateOnly))
	}
	parts = append(parts, "priority="+snap.Priority.OrDefault().String())

	status := snap.Status
	if status == "" {
		status = model.DefaultStatus
	}
	parts = append(parts, "status="+status)

	return strings.Join(parts, summarySeparator)
}
