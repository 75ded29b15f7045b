package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/assistant"
	"task-assistant/internal/assistant/local"
	"task-assistant/internal/model"
)

// Wednesday, May 1, 2024 15:30 UTC.
var fixedNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// mockLogger records warnings.
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// failingEngine fails every call.
type failingEngine struct{ err error }

func (f failingEngine) ParseFreeText(ctx context.Context, text string) (assistant.TaskDraft, error) {
	return assistant.TaskDraft{}, f.err
}
func (f failingEngine) ClassifyPriority(ctx context.Context, snap assistant.TaskSnapshot) (assistant.PrioritySuggestion, error) {
	return assistant.PrioritySuggestion{}, f.err
}
func (f failingEngine) PlanSchedule(ctx context.Context, snap assistant.TaskSnapshot) (assistant.ScheduleSuggestion, error) {
	return assistant.ScheduleSuggestion{}, f.err
}

// slowEngine blocks until its context is done.
type slowEngine struct{}

func (slowEngine) ParseFreeText(ctx context.Context, text string) (assistant.TaskDraft, error) {
	<-ctx.Done()
	return assistant.TaskDraft{}, ctx.Err()
}
func (slowEngine) ClassifyPriority(ctx context.Context, snap assistant.TaskSnapshot) (assistant.PrioritySuggestion, error) {
	<-ctx.Done()
	return assistant.PrioritySuggestion{}, ctx.Err()
}
func (slowEngine) PlanSchedule(ctx context.Context, snap assistant.TaskSnapshot) (assistant.ScheduleSuggestion, error) {
	<-ctx.Done()
	return assistant.ScheduleSuggestion{}, ctx.Err()
}

// stubEngine returns fixed values.
type stubEngine struct {
	draft    assistant.TaskDraft
	priority assistant.PrioritySuggestion
	schedule assistant.ScheduleSuggestion
}

func (s stubEngine) ParseFreeText(ctx context.Context, text string) (assistant.TaskDraft, error) {
	return s.draft, nil
}
func (s stubEngine) ClassifyPriority(ctx context.Context, snap assistant.TaskSnapshot) (assistant.PrioritySuggestion, error) {
	return s.priority, nil
}
func (s stubEngine) PlanSchedule(ctx context.Context, snap assistant.TaskSnapshot) (assistant.ScheduleSuggestion, error) {
	return s.schedule, nil
}

func snapshots() []assistant.TaskSnapshot {
	soon := fixedNow.Add(time.Hour)
	later := fixedNow.Add(10 * 24 * time.Hour)
	return []assistant.TaskSnapshot{
		{Title: "No due"},
		{Title: "Soon", DueDate: &soon, Priority: model.PriorityHigh, Status: "todo"},
		{Title: "Later", DueDate: &later, Priority: model.PriorityMedium, Status: "in_progress"},
	}
}

func TestNew_SelectsMode(t *testing.T) {
	assert.Equal(t, assistant.ModeLocalOnly, New(&mockLogger{}, nil, nil, 0).Mode())
	assert.Equal(t, assistant.ModeExternalPreferred, New(&mockLogger{}, nil, failingEngine{}, 0).Mode())
}

func TestFallbackEqualsLocal(t *testing.T) {
	eng := local.New(local.WithClock(fixedClock))
	localOnly := New(&mockLogger{}, eng, nil, time.Second)
	logger := &mockLogger{}
	withFailing := New(logger, eng, failingEngine{err: errors.New("boom")}, time.Second)

	ctx := context.Background()
	texts := []string{"", "Buy milk", "pay rent due tomorrow", "Finish report due in 3 days, urgent"}
	for _, text := range texts {
		assert.Equal(t, localOnly.Parse(ctx, text), withFailing.Parse(ctx, text), "parse %q", text)
	}
	for _, snap := range snapshots() {
		assert.Equal(t, localOnly.SuggestPriority(ctx, snap), withFailing.SuggestPriority(ctx, snap))
		assert.Equal(t, localOnly.SuggestSchedule(ctx, snap), withFailing.SuggestSchedule(ctx, snap))
		assert.Equal(t, localOnly.Summarize(ctx, snap), withFailing.Summarize(ctx, snap))
	}

	assert.Len(t, logger.warns, len(texts)+2*len(snapshots()))
}

func TestExternalTimeoutFallsBack(t *testing.T) {
	eng := local.New(local.WithClock(fixedClock))
	uc := New(&mockLogger{}, eng, slowEngine{}, 20*time.Millisecond)

	start := time.Now()
	draft := uc.Parse(context.Background(), "pay rent due tomorrow")
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "pay rent", draft.Title)
	require.NotNil(t, draft.DueDate)
	assert.Equal(t, time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC), *draft.DueDate)
}

func TestCancelledContextStillFallsBack(t *testing.T) {
	eng := local.New(local.WithClock(fixedClock))
	uc := New(&mockLogger{}, eng, slowEngine{}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sug := uc.SuggestPriority(ctx, assistant.TaskSnapshot{Title: "x"})
	assert.Equal(t, model.PriorityMedium, sug.Priority)
	assert.Equal(t, 0.5, sug.Confidence)
}

func TestExternalResultIsUsed(t *testing.T) {
	start := fixedNow.Add(2 * time.Hour)
	ext := stubEngine{
		draft:    assistant.TaskDraft{Title: "From model"},
		priority: assistant.PrioritySuggestion{Priority: model.PriorityLow, Confidence: 0.42, Explanation: "model"},
		schedule: assistant.ScheduleSuggestion{SuggestedStart: start, Explanation: "model"},
	}
	uc := New(&mockLogger{}, local.New(local.WithClock(fixedClock)), ext, time.Second)

	ctx := context.Background()
	assert.Equal(t, "From model", uc.Parse(ctx, "anything due tomorrow").Title)
	assert.Equal(t, 0.42, uc.SuggestPriority(ctx, assistant.TaskSnapshot{}).Confidence)
	assert.Equal(t, start, uc.SuggestSchedule(ctx, assistant.TaskSnapshot{}).SuggestedStart)
	assert.Equal(t, "Title | priority=medium | status=todo", uc.Summarize(ctx, assistant.TaskSnapshot{Title: "Title"}))
}
