package local_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
)

func TestClassifyPriority(t *testing.T) {
	engine := newEngine(fixedNow)

	tests := []struct {
		name           string
		due            *time.Time
		wantPriority   model.Priority
		wantConfidence float64
		wantExplain    string
	}{
		{"due in one hour", ptr(fixedNow.Add(time.Hour)), model.PriorityHigh, 0.9, "Due within 24 hours."},
		{"due exactly in 24 hours", ptr(fixedNow.Add(24 * time.Hour)), model.PriorityHigh, 0.9, "Due within 24 hours."},
		{"already overdue", ptr(fixedNow.Add(-time.Hour)), model.PriorityHigh, 0.9, "Due within 24 hours."},
		{"due in two days", ptr(fixedNow.Add(48 * time.Hour)), model.PriorityHigh, 0.7, "Due within 3 days."},
		{"due exactly in 3 days", ptr(fixedNow.Add(72 * time.Hour)), model.PriorityHigh, 0.7, "Due within 3 days."},
		{"due in ten days", ptr(fixedNow.AddDate(0, 0, 10)), model.PriorityMedium, 0.6, "Due date is not imminent."},
		{"no due date", nil, model.PriorityMedium, 0.5, "Default suggestion."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ClassifyPriority(ctx, assistant.TaskSnapshot{Title: "t", DueDate: tt.due})
			require.NoError(t, err)

			assert.Equal(t, tt.wantPriority, got.Priority)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
			assert.Equal(t, tt.wantExplain, got.Explanation)
		})
	}
}

func TestClassifyPriority_NonUTCDueDate(t *testing.T) {
	// 2024-05-02 08:00 in UTC+7 is 2024-05-02 01:00 UTC, less than 24h after fixedNow.
	due := time.Date(2024, 5, 2, 8, 0, 0, 0, time.FixedZone("UTC+7", 7*3600))

	got, err := newEngine(fixedNow).ClassifyPriority(ctx, assistant.TaskSnapshot{DueDate: &due})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
}
