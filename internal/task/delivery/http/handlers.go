package http

import (
	"github.com/gin-gonic/gin"

	"task-management/internal/middleware"
	"task-management/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks, newest first. Any query parameter switches to filtered mode.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       status   query string false "all, pending or completed"
// @Param       date     query string false "all, today, overdue, upcoming or range"
// @Param       from     query string false "Range start (YYYY-MM-DD)"
// @Param       to       query string false "Range end, inclusive (YYYY-MM-DD)"
// @Param       category query string false "Category or all"
// @Param       priority query string false "low, medium, high or all"
// @Param       keyword  query string false "Substring of content"
// @Param       sort     query string false "combined, deadline or priority"
// @Success     200 {object} response.Resp{data=listResp}
// @Failure     400 {object} response.ErrorResp "INVALID_QUERY"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     500 {object} response.ErrorResp "GET_TASKS_FAILED"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err, errGetTasksFailed))
		return
	}

	output, err := h.uc.List(ctx, sc, req.input)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.List uc.List: %v", err)
		response.Error(c, h.mapError(err, errGetTasksFailed))
		return
	}

	response.OK(c, h.newListResp(output.Tasks))
}

// Today godoc
// @Summary     Today's tasks
// @Description Returns tasks due today, ordered by priority desc, deadline asc, created asc.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       includeNoDeadline query string false "1 to include undated tasks"
// @Success     200 {object} response.Resp{data=listResp}
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     500 {object} response.ErrorResp "GET_TODAY_TASKS_FAILED"
// @Router      /api/tasks/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Today(ctx, sc, h.processTodayReq(c))
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Today uc.Today: %v", err)
		response.Error(c, h.mapError(err, errGetTodayFailed))
		return
	}

	response.OK(c, h.newListResp(output.Tasks))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task. Category defaults to other, priority to medium and status to pending.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task"
// @Success     201 {object} response.Resp{data=taskResp}
// @Failure     400 {object} response.ErrorResp "INVALID_BODY or INVALID_CONTENT"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     500 {object} response.ErrorResp "CREATE_TASK_FAILED"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err, errCreateFailed))
		return
	}

	output, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Create uc.Create: %v", err)
		response.Error(c, h.mapError(err, errCreateFailed))
		return
	}

	response.Created(c, newTaskResp(output.Task))
}

// Patch godoc
// @Summary     Update a task
// @Description Updates any subset of content, category, priority, deadline and status. An empty deadline clears it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string   true "Task ID"
// @Param       body body patchReq true "Fields to update"
// @Success     200 {object} response.Resp{data=taskResp}
// @Failure     400 {object} response.ErrorResp "Validation error"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     404 {object} response.ErrorResp "TASK_NOT_FOUND"
// @Failure     500 {object} response.ErrorResp "PATCH_TASK_FAILED"
// @Router      /api/tasks/{id} [PATCH]
func (h *handler) Patch(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	input, err := h.processPatchReq(c)
	if err != nil {
		response.Error(c, h.mapError(err, errPatchFailed))
		return
	}

	output, err := h.uc.Patch(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.http.Patch uc.Patch: %v", err)
		response.Error(c, h.mapError(err, errPatchFailed))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp{data=deleteResp}
// @Failure     400 {object} response.ErrorResp "INVALID_ID"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     404 {object} response.ErrorResp "TASK_NOT_FOUND"
// @Failure     500 {object} response.ErrorResp "DELETE_TASK_FAILED"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, h.mapError(err, errDeleteFailed))
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "task.delivery.http.Delete uc.Delete: %v", err)
		response.Error(c, h.mapError(err, errDeleteFailed))
		return
	}

	response.OK(c, deleteResp{ID: id, Deleted: true})
}

// Batch godoc
// @Summary     Apply one action to many tasks
// @Description Actions: complete, delete, setPriority (1, 3 or 5), setStatus. Ids owned by others or not UUIDs report not_found.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body batchReq true "Batch"
// @Success     200 {object} response.Resp{data=batchResp}
// @Failure     400 {object} response.ErrorResp "INVALID_PRIORITY, UNSUPPORTED_ACTION or INVALID_BODY"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     500 {object} response.ErrorResp "BATCH_FAILED"
// @Router      /api/tasks/batch [POST]
func (h *handler) Batch(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	input, err := h.processBatchReq(c)
	if err != nil {
		response.Error(c, h.mapError(err, errBatchFailed))
		return
	}

	output, err := h.uc.Batch(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.http.Batch uc.Batch: %v", err)
		response.Error(c, h.mapError(err, errBatchFailed))
		return
	}

	response.OK(c, newBatchResp(output))
}
