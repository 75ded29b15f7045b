package local_test

import (
	"context"
	"strings"
	"time"

	"task-assistant/internal/assistant/local"
)

// Wednesday, May 1, 2024 15:30 UTC.
var fixedNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func newEngine(now time.Time) *local.Engine {
	return local.New(local.WithClock(func() time.Time { return now }))
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

var ctx = context.Background()

var longText = strings.Repeat("abcdefghij", 15)
