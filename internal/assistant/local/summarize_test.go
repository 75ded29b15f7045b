package local_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"task-assistant/internal/assistant"
	"task-assistant/internal/assistant/local"
	"task-assistant/internal/model"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		snap assistant.TaskSnapshot
		want string
	}{
		{
			name: "all fields",
			snap: assistant.TaskSnapshot{
				Title:    "X",
				DueDate:  ptr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				Priority: model.PriorityLow,
				Status:   "todo",
			},
			want: "X | due 2024-01-01 | priority=low | status=todo",
		},
		{
			name: "no due date",
			snap: assistant.TaskSnapshot{Title: "Y", Priority: model.PriorityHigh, Status: "done"},
			want: "Y | priority=high | status=done",
		},
		{
			name: "defaults",
			snap: assistant.TaskSnapshot{Title: "Z"},
			want: "Z | priority=medium | status=todo",
		},
		{
			name: "due date rendered in UTC",
			snap: assistant.TaskSnapshot{
				Title:    "W",
				DueDate:  ptr(time.Date(2024, 1, 2, 3, 0, 0, 0, time.FixedZone("UTC+7", 7*3600))),
				Priority: model.PriorityMedium,
				Status:   "in_progress",
			},
			want: "W | due 2024-01-01 | priority=medium | status=in_progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, local.Summarize(tt.snap))
			assert.Equal(t, local.Summarize(tt.snap), local.Summarize(tt.snap))
		})
	}
}
