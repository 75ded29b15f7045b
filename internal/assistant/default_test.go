package assistant

import (
	"context"
	"errors"
	"testing"
)

type stubUseCase struct{ mode Mode }

func (s stubUseCase) Parse(ctx context.Context, text string) TaskDraft { return TaskDraft{Title: text} }
func (s stubUseCase) SuggestPriority(ctx context.Context, snap TaskSnapshot) PrioritySuggestion {
	return PrioritySuggestion{}
}
func (s stubUseCase) SuggestSchedule(ctx context.Context, snap TaskSnapshot) ScheduleSuggestion {
	return ScheduleSuggestion{}
}
func (s stubUseCase) Summarize(ctx context.Context, snap TaskSnapshot) string { return snap.Title }
func (s stubUseCase) Mode() Mode                                          { return s.mode }

func TestDefaultLifecycle(t *testing.T) {
	reset()
	t.Cleanup(reset)

	if _, err := Default(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized before Init, got %v", err)
	}

	if err := Init(nil); !errors.Is(err, ErrNilUseCase) {
		t.Fatalf("expected ErrNilUseCase, got %v", err)
	}

	first := stubUseCase{mode: ModeLocalOnly}
	if err := Init(first); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := Init(stubUseCase{mode: ModeExternalPreferred}); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}

	got, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if got.Mode() != ModeLocalOnly {
		t.Errorf("Default() returned the wrong provider: mode %q", got.Mode())
	}
}
