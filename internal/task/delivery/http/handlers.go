package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task. Priority defaults to medium and status to todo.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTaskResp(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks ordered by id with optional status/priority filters.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       status   query string false "Filter by status"
// @Param       priority query string false "Filter by priority (high/medium/low)"
// @Param       limit    query int    false "Page size (default: 100, max: 500)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Omitted fields keep their value; clear_due_date removes the due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Param       id path int true "Task ID"
// @Success     204
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}

// Parse godoc
// @Summary     Parse free text into a task
// @Description Extracts title, due date and priority from text. With create=true the task is persisted.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Free text"
// @Success     200 {object} parseResp
// @Success     201 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !req.Create {
		output, err := h.uc.Parse(ctx, req.Text)
		if err != nil {
			h.l.Errorf(ctx, "uc.Parse: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		response.OK(c, h.newParseResp(output.Draft, nil))
		return
	}

	output, err := h.uc.CreateFromText(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newParseResp(output.Draft, &output.Task))
}

// SuggestPriority godoc
// @Summary     Suggest a priority for a task
// @Tags        Assistant
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} prioritySuggestionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/suggest [POST]
func (h *handler) SuggestPriority(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SuggestPriority(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestPriority: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPrioritySuggestionResp(output))
}

// SuggestSchedule godoc
// @Summary     Suggest a schedule window for a task
// @Tags        Assistant
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} scheduleSuggestionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/schedule [POST]
func (h *handler) SuggestSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SuggestSchedule(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestSchedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleSuggestionResp(output))
}

// Summary godoc
// @Summary     One-line summary of a task
// @Tags        Assistant
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} summaryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Summarize(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, summaryResp{TaskID: output.TaskID, Summary: output.Summary})
}

// Chat godoc
// @Summary     Chat with the task agent
// @Description Interprets a message as a task. Creates it when agentic behavior is enabled or automated=true, otherwise returns a suggestion.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agent/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}
