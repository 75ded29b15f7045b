package http

import (
	"strings"
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/pkg/response"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// --- Request DTOs ---

type createReq struct {
	Title       string  `json:"title"       binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Status      string  `json:"status"      binding:"omitempty,max=32"`

	dueDate *time.Time
}

func (r *createReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return task.ErrInvalidTitle
	}
	due, err := parseDueDate(r.DueDate)
	if err != nil {
		return err
	}
	r.dueDate = due
	return nil
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.dueDate,
		Priority:    model.Priority(r.Priority),
		Status:      r.Status,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"   binding:"omitempty,max=32"`
	Priority string `form:"priority" binding:"omitempty,oneof=high medium low"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListInput{
		Status:   r.Status,
		Priority: model.Priority(r.Priority),
		Limit:    limit,
		Offset:   offset,
	}
}

// ---

type updateReq struct {
	ID           int64   `json:"-"` // populated from URI param
	Title        *string `json:"title"          binding:"omitempty,max=100"`
	Description  *string `json:"description"    binding:"omitempty,max=2000"`
	DueDate      *string `json:"due_date"`
	ClearDueDate bool    `json:"clear_due_date"`
	Priority     *string `json:"priority"       binding:"omitempty,oneof=high medium low"`
	Status       *string `json:"status"         binding:"omitempty,min=1,max=32"`

	dueDate *time.Time
}

func (r *updateReq) validate() error {
	due, err := parseDueDate(r.DueDate)
	if err != nil {
		return err
	}
	r.dueDate = due
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      r.dueDate,
		ClearDueDate: r.ClearDueDate,
		Status:       r.Status,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	return in
}

// ---

type parseReq struct {
	Text   string `json:"text"   binding:"required"`
	Create bool   `json:"create"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return task.ErrEmptyText
	}
	return nil
}

// ---

type chatReq struct {
	Message   string `json:"message"   binding:"required"`
	Automated bool   `json:"automated"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return task.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() task.ChatInput {
	return task.ChatInput{Message: r.Message, Automated: r.Automated}
}

// parseDueDate accepts RFC3339 or YYYY-MM-DD (midnight UTC).
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t, nil
	}
	return nil, errInvalidDueDate
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	DueDate     *response.DateTime `json:"due_date"`
	Priority    string             `json:"priority"`
	Status      string             `json:"status"`
	CreatedAt   response.DateTime  `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     response.NewDateTime(t.DueDate),
		Priority:    t.Priority.OrDefault().String(),
		Status:      t.Status,
		CreatedAt:   response.DateTime(t.CreatedAt),
	}
}

type draftResp struct {
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	DueDate     *response.DateTime `json:"due_date"`
	Priority    *string            `json:"priority"`
}

func newDraftResp(d assistant.TaskDraft) draftResp {
	resp := draftResp{
		Title:       d.Title,
		Description: d.Description,
		DueDate:     response.NewDateTime(d.DueDate),
	}
	if d.Priority != nil {
		p := d.Priority.String()
		resp.Priority = &p
	}
	return resp
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type parseResp struct {
	Draft draftResp `json:"draft"`
	Task  *taskResp `json:"task,omitempty"`
}

func (h *handler) newParseResp(draft assistant.TaskDraft, t *model.Task) parseResp {
	resp := parseResp{Draft: newDraftResp(draft)}
	if t != nil {
		tr := newTaskResp(*t)
		resp.Task = &tr
	}
	return resp
}

type prioritySuggestionResp struct {
	TaskID      int64   `json:"task_id"`
	Priority    string  `json:"priority"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

func (h *handler) newPrioritySuggestionResp(out task.SuggestPriorityOutput) prioritySuggestionResp {
	return prioritySuggestionResp{
		TaskID:      out.TaskID,
		Priority:    out.Suggestion.Priority.String(),
		Confidence:  out.Suggestion.Confidence,
		Explanation: out.Suggestion.Explanation,
	}
}

type scheduleSuggestionResp struct {
	TaskID         int64              `json:"task_id"`
	SuggestedStart response.DateTime  `json:"suggested_start"`
	SuggestedEnd   *response.DateTime `json:"suggested_end"`
	Explanation    string             `json:"explanation"`
}

func (h *handler) newScheduleSuggestionResp(out task.SuggestScheduleOutput) scheduleSuggestionResp {
	return scheduleSuggestionResp{
		TaskID:         out.TaskID,
		SuggestedStart: response.DateTime(out.Suggestion.SuggestedStart),
		SuggestedEnd:   response.NewDateTime(out.Suggestion.SuggestedEnd),
		Explanation:    out.Suggestion.Explanation,
	}
}

type summaryResp struct {
	TaskID  int64  `json:"task_id"`
	Summary string `json:"summary"`
}

type chatResp struct {
	Action        string     `json:"action"`
	Task          *taskResp  `json:"task,omitempty"`
	SuggestedTask *draftResp `json:"suggested_task,omitempty"`
	Summary       string     `json:"summary,omitempty"`
	Explanation   string     `json:"explanation,omitempty"`
}

func (h *handler) newChatResp(out task.ChatOutput) chatResp {
	resp := chatResp{
		Action:      string(out.Action),
		Summary:     out.Summary,
		Explanation: out.Explanation,
	}
	if out.Task != nil {
		tr := newTaskResp(*out.Task)
		resp.Task = &tr
	}
	if out.SuggestedTask != nil {
		dr := newDraftResp(*out.SuggestedTask)
		resp.SuggestedTask = &dr
	}
	return resp
}
