package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/assistant/local"
	assistantUC "task-assistant/internal/assistant/usecase"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
	"task-assistant/internal/task/repository/sqldb"
	"task-assistant/pkg/log"
	pkgSQL "task-assistant/pkg/sqldb"
)

// Wednesday, May 1, 2024 15:30 UTC.
var fixedNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ptr[T any](v T) *T { return &v }

func newTestUseCase(t *testing.T, opts ...Option) *implUseCase {
	t.Helper()
	db, err := pkgSQL.Open(context.Background(), "sqlite:///:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := log.NewNop()
	asst := assistantUC.New(l, local.New(local.WithClock(fixedClock)), nil, 0)
	return New(l, sqldb.New(db, l), asst, append([]Option{WithClock(fixedClock)}, opts...)...)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	out, err := uc.Create(ctx, task.CreateInput{Title: "Buy milk"})
	require.NoError(t, err)
	assert.NotZero(t, out.Task.ID)
	assert.Equal(t, model.PriorityMedium, out.Task.Priority)
	assert.Equal(t, model.DefaultStatus, out.Task.Status)
	assert.Equal(t, fixedNow, out.Task.CreatedAt)

	out, err = uc.Create(ctx, task.CreateInput{Title: "Call bank", Priority: "HIGH", Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, out.Task.Priority)
	assert.Equal(t, "in_progress", out.Task.Status)

	tests := []struct {
		name  string
		input task.CreateInput
		want  error
	}{
		{"blank title", task.CreateInput{Title: "  "}, task.ErrInvalidTitle},
		{"long title", task.CreateInput{Title: string(make([]rune, 101))}, task.ErrInvalidTitle},
		{"bad priority", task.CreateInput{Title: "x", Priority: "p0"}, task.ErrInvalidPriority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDetailUpdateDelete(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	due := fixedNow.Add(48 * time.Hour)
	created, err := uc.Create(ctx, task.CreateInput{Title: "Report", Description: ptr("Q2"), DueDate: &due})
	require.NoError(t, err)
	id := created.Task.ID

	got, err := uc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, created.Task, got.Task)

	upd, err := uc.Update(ctx, task.UpdateInput{ID: id, Status: ptr("done"), Priority: ptr(model.PriorityLow)})
	require.NoError(t, err)
	assert.Equal(t, "Report", upd.Task.Title)
	assert.Equal(t, "Q2", *upd.Task.Description)
	assert.Equal(t, due, *upd.Task.DueDate)
	assert.Equal(t, model.PriorityLow, upd.Task.Priority)
	assert.Equal(t, "done", upd.Task.Status)

	upd, err = uc.Update(ctx, task.UpdateInput{ID: id, ClearDueDate: true})
	require.NoError(t, err)
	assert.Nil(t, upd.Task.DueDate)

	_, err = uc.Update(ctx, task.UpdateInput{ID: id, Title: ptr("")})
	assert.ErrorIs(t, err, task.ErrInvalidTitle)

	_, err = uc.Update(ctx, task.UpdateInput{ID: id, Priority: ptr(model.Priority("urgent"))})
	assert.ErrorIs(t, err, task.ErrInvalidPriority)

	require.NoError(t, uc.Delete(ctx, id))

	_, err = uc.Detail(ctx, id)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, id), task.ErrTaskNotFound)
	_, err = uc.Update(ctx, task.UpdateInput{ID: id})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	for _, in := range []task.CreateInput{
		{Title: "a", Priority: model.PriorityHigh},
		{Title: "b"},
		{Title: "c", Priority: model.PriorityHigh, Status: "done"},
	} {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, task.ListInput{Priority: model.PriorityHigh})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "a", out.Tasks[0].Title)

	_, err = uc.List(ctx, task.ListInput{Priority: "p1"})
	assert.ErrorIs(t, err, task.ErrInvalidPriority)
}

func TestParseAndCreateFromText(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	parsed, err := uc.Parse(ctx, "Finish report due in 3 days, urgent")
	require.NoError(t, err)
	assert.Equal(t, "Finish report", parsed.Draft.Title)
	require.NotNil(t, parsed.Draft.DueDate)
	assert.Equal(t, time.Date(2024, 5, 4, 23, 59, 0, 0, time.UTC), *parsed.Draft.DueDate)

	list, err := uc.List(ctx, task.ListInput{})
	require.NoError(t, err)
	assert.Zero(t, list.Total, "parse must not persist")

	created, err := uc.CreateFromText(ctx, "pay rent due tomorrow")
	require.NoError(t, err)
	assert.Equal(t, "pay rent", created.Task.Title)
	assert.Equal(t, model.PriorityMedium, created.Task.Priority)
	assert.Equal(t, time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC), *created.Task.DueDate)

	_, err = uc.Parse(ctx, " ")
	assert.ErrorIs(t, err, task.ErrEmptyText)
	_, err = uc.CreateFromText(ctx, "")
	assert.ErrorIs(t, err, task.ErrEmptyText)
}

func TestCreateFromText_LongTextCapsDescription(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	text := strings.Repeat("x", task.MaxDescriptionLength+500)

	out, err := uc.CreateFromText(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 100), out.Task.Title)
	require.NotNil(t, out.Task.Description)
	assert.Equal(t, task.MaxDescriptionLength, utf8.RuneCountInString(*out.Task.Description))

	chat, err := uc.Chat(ctx, task.ChatInput{Message: text, Automated: true})
	require.NoError(t, err)
	require.NotNil(t, chat.Task)
	require.NotNil(t, chat.Task.Description)
	assert.Equal(t, task.MaxDescriptionLength, utf8.RuneCountInString(*chat.Task.Description))
}

func TestTruncateDescription(t *testing.T) {
	assert.Nil(t, truncateDescription(nil))

	short := "short"
	assert.Same(t, &short, truncateDescription(&short))

	long := strings.Repeat("é", task.MaxDescriptionLength+1)
	got := truncateDescription(&long)
	require.NotNil(t, got)
	assert.Equal(t, strings.Repeat("é", task.MaxDescriptionLength), *got)
}

func TestSuggestions(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	soon := fixedNow.Add(time.Hour)
	created, err := uc.Create(ctx, task.CreateInput{Title: "Soon", DueDate: &soon})
	require.NoError(t, err)
	id := created.Task.ID

	prio, err := uc.SuggestPriority(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, prio.TaskID)
	assert.Equal(t, model.PriorityHigh, prio.Suggestion.Priority)
	assert.Equal(t, 0.9, prio.Suggestion.Confidence)

	sched, err := uc.SuggestSchedule(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, sched.Suggestion.SuggestedStart, "start is clamped to now")

	sum, err := uc.Summarize(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Soon | due 2024-05-01 | priority=medium | status=todo", sum.Summary)

	_, err = uc.SuggestPriority(ctx, 999)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	_, err = uc.SuggestSchedule(ctx, 999)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	_, err = uc.Summarize(ctx, 999)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("empty message", func(t *testing.T) {
		_, err := newTestUseCase(t).Chat(ctx, task.ChatInput{Message: "   "})
		assert.ErrorIs(t, err, task.ErrEmptyMessage)
	})

	t.Run("suggest when not permitted", func(t *testing.T) {
		uc := newTestUseCase(t)
		out, err := uc.Chat(ctx, task.ChatInput{Message: "pay rent due tomorrow"})
		require.NoError(t, err)
		assert.Equal(t, task.ChatActionSuggestCreate, out.Action)
		require.NotNil(t, out.SuggestedTask)
		assert.Equal(t, "pay rent", out.SuggestedTask.Title)
		assert.Equal(t, task.ChatExplanationDisabled, out.Explanation)

		list, err := uc.List(ctx, task.ListInput{})
		require.NoError(t, err)
		assert.Zero(t, list.Total)
	})

	t.Run("automated flag creates", func(t *testing.T) {
		uc := newTestUseCase(t)
		out, err := uc.Chat(ctx, task.ChatInput{Message: "pay rent due tomorrow", Automated: true})
		require.NoError(t, err)
		assert.Equal(t, task.ChatActionCreated, out.Action)
		require.NotNil(t, out.Task)
		assert.NotZero(t, out.Task.ID)
		assert.Equal(t, task.ChatExplanationCreated, out.Explanation)
	})

	t.Run("agentic config creates", func(t *testing.T) {
		uc := newTestUseCase(t, WithAgenticBehavior(true))
		out, err := uc.Chat(ctx, task.ChatInput{Message: "Buy milk urgent"})
		require.NoError(t, err)
		assert.Equal(t, task.ChatActionCreated, out.Action)
		assert.Equal(t, model.PriorityHigh, out.Task.Priority)
	})

	t.Run("no title falls back to summary", func(t *testing.T) {
		uc := newTestUseCase(t, WithAgenticBehavior(true))
		out, err := uc.Chat(ctx, task.ChatInput{Message: "due tomorrow"})
		require.NoError(t, err)
		assert.Equal(t, task.ChatActionNone, out.Action)
		assert.Equal(t, "due tomorrow | priority=medium | status=todo", out.Summary)
		assert.Nil(t, out.Task)
	})
}

// failingRepo fails every call.
type failingRepo struct{}

var errDB = errors.New("db down")

func (failingRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, errDB
}
func (failingRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	return model.Task{}, errDB
}
func (failingRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	return nil, 0, errDB
}
func (failingRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	return model.Task{}, errDB
}
func (failingRepo) DeleteTask(ctx context.Context, id int64) error { return errDB }
func (failingRepo) Ping(ctx context.Context) error                 { return errDB }

func TestRepositoryErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	l := log.NewNop()
	uc := New(l, failingRepo{}, assistantUC.New(l, local.New(), nil, 0))

	_, err := uc.Create(ctx, task.CreateInput{Title: "x"})
	assert.ErrorIs(t, err, errDB)
	_, err = uc.List(ctx, task.ListInput{})
	assert.ErrorIs(t, err, errDB)
	_, err = uc.Detail(ctx, 1)
	assert.ErrorIs(t, err, errDB)
	assert.ErrorIs(t, uc.Delete(ctx, 1), errDB)
	_, err = uc.CreateFromText(ctx, "x")
	assert.ErrorIs(t, err, errDB)
}
