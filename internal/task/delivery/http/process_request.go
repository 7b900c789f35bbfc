package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-management/internal/task"
	"task-management/internal/task/query"
)

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var raw listQuery
	if err := c.ShouldBindQuery(&raw); err != nil {
		return listReq{}, errInvalidQueryParam
	}

	rs := raw.toRaw()
	if rs.IsEmpty() {
		return listReq{}, nil
	}

	spec, err := query.ParseSpec(rs, h.parser)
	if err != nil {
		return listReq{}, err
	}
	return listReq{input: task.ListInput{Spec: &spec}}, nil
}

func (h *handler) processTodayReq(c *gin.Context) task.TodayInput {
	switch c.Query("includeNoDeadline") {
	case "1", "true", "yes":
		return task.TodayInput{IncludeNoDeadline: true}
	}
	return task.TodayInput{}
}

func (h *handler) processCreateReq(c *gin.Context) (task.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateInput{}, errMalformedBody
	}
	return req.toInput(h.parser)
}

func (h *handler) processPatchReq(c *gin.Context) (task.PatchInput, error) {
	id, err := h.processID(c)
	if err != nil {
		return task.PatchInput{}, err
	}

	var req patchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.PatchInput{}, errMalformedBody
	}
	return req.toInput(id, h.parser)
}

func (h *handler) processBatchReq(c *gin.Context) (task.BatchInput, error) {
	var req batchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.BatchInput{}, errMalformedBody
	}
	return req.toInput()
}

// processID reads the :id path parameter. Ids are UUIDs.
func (h *handler) processID(c *gin.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", errMalformedID
	}
	return id.String(), nil
}
