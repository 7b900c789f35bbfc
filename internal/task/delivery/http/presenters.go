package http

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"task-management/internal/model"
	"task-management/internal/task"
	"task-management/internal/task/query"
	"task-management/pkg/datemath"
	"task-management/pkg/response"
)

// --- Request DTOs ---

type listQuery struct {
	Status   string `form:"status"`
	Date     string `form:"date"`
	From     string `form:"from"`
	To       string `form:"to"`
	Category string `form:"category"`
	Priority string `form:"priority"`
	Keyword  string `form:"keyword"`
	Sort     string `form:"sort"`
}

func (q listQuery) toRaw() query.RawSpec {
	return query.RawSpec{
		Status:   q.Status,
		Date:     q.Date,
		From:     q.From,
		To:       q.To,
		Category: q.Category,
		Priority: q.Priority,
		Keyword:  q.Keyword,
		Sort:     q.Sort,
	}
}

type listReq struct {
	input task.ListInput
}

// createReq accepts priority as a label ("high") or a number (4 is bucketed to 3).
type createReq struct {
	Content  json.RawMessage `json:"content" swaggertype:"string"`
	Category string          `json:"category"`
	Priority json.RawMessage `json:"priority" swaggertype:"string"`
	Deadline *string         `json:"deadline"`
	Status   string          `json:"status"`
}

func (r createReq) toInput(parser *datemath.Parser) (task.CreateInput, error) {
	content, err := decodeContent(r.Content)
	if err != nil {
		return task.CreateInput{}, err
	}

	input := task.CreateInput{
		Content:  content,
		Category: r.Category,
		Status:   r.Status,
	}
	// Unparseable priorities fall back to medium on create.
	if p, present, ok := decodePriority(r.Priority); present && ok {
		input.Priority = &p
	}
	// An invalid deadline means no deadline.
	if r.Deadline != nil {
		if d, ok := parser.ParseDate(*r.Deadline); ok {
			input.Deadline = &d
		}
	}
	return input, nil
}

// patchReq keeps raw values so an absent field can be told apart from null.
type patchReq struct {
	Content  json.RawMessage `json:"content" swaggertype:"string"`
	Category json.RawMessage `json:"category" swaggertype:"string"`
	Priority json.RawMessage `json:"priority" swaggertype:"string"`
	Deadline json.RawMessage `json:"deadline" swaggertype:"string"`
	Status   json.RawMessage `json:"status" swaggertype:"string"`
}

func (r patchReq) toInput(id string, parser *datemath.Parser) (task.PatchInput, error) {
	input := task.PatchInput{ID: id}

	if present(r.Content) {
		content, err := decodeContent(r.Content)
		if err != nil {
			return input, err
		}
		input.Content = &content
	}
	if present(r.Category) {
		category, err := decodeString(r.Category)
		if err != nil {
			return input, errMalformedBody
		}
		input.Category = &category
	}
	if p, isSet, ok := decodePriority(r.Priority); isSet {
		if !ok {
			return input, task.ErrInvalidPriority
		}
		input.Priority = &p
	}
	if present(r.Status) {
		status, err := decodeString(r.Status)
		if err != nil {
			return input, errMalformedBody
		}
		input.Status = &status
	}
	if len(r.Deadline) > 0 {
		if isNull(r.Deadline) {
			input.ClearDeadline = true
		} else {
			s, err := decodeString(r.Deadline)
			if err != nil {
				return input, errMalformedBody
			}
			if strings.TrimSpace(s) == "" {
				input.ClearDeadline = true
			} else {
				d, ok := parser.ParseDate(s)
				if !ok {
					return input, errMalformedDeadline
				}
				input.Deadline = &d
			}
		}
	}

	if input.IsEmpty() {
		return input, task.ErrEmptyPatch
	}
	return input, nil
}

type batchReq struct {
	IDs      []string        `json:"ids"`
	Action   string          `json:"action"`
	Priority json.RawMessage `json:"priority" swaggertype:"integer"`
	Status   string          `json:"status"`
}

func (r batchReq) toInput() (task.BatchInput, error) {
	if len(r.IDs) == 0 {
		return task.BatchInput{}, task.ErrEmptyIDs
	}

	input := task.BatchInput{
		IDs:    make([]string, 0, len(r.IDs)),
		Action: task.BatchAction(r.Action),
		Status: r.Status,
	}
	for _, raw := range r.IDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if parsed, err := uuid.Parse(id); err == nil {
			id = parsed.String()
		} else {
			input.Malformed = append(input.Malformed, id)
		}
		input.IDs = append(input.IDs, id)
	}

	// setPriority takes the raw level; 2 or 4 are rejected downstream.
	if input.Action == task.ActionSetPriority {
		n, ok := decodeLevel(r.Priority)
		if !present(r.Priority) || !ok {
			return task.BatchInput{}, task.ErrInvalidPriority
		}
		input.Priority = n
	}
	return input, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !isNull(raw)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeString(raw json.RawMessage) (string, error) {
	var s string
	err := json.Unmarshal(raw, &s)
	return s, err
}

// decodeContent requires a non-blank JSON string.
func decodeContent(raw json.RawMessage) (string, error) {
	if !present(raw) {
		return "", task.ErrInvalidContent
	}
	s, err := decodeString(raw)
	if err != nil || strings.TrimSpace(s) == "" {
		return "", task.ErrInvalidContent
	}
	return s, nil
}

// decodePriority reads a label or a number. isSet is false for absent and
// null values; ok is false when the value is neither a label nor a number.
func decodePriority(raw json.RawMessage) (p model.Priority, isSet, ok bool) {
	if !present(raw) {
		return 0, false, false
	}
	if n, isLevel := decodeLevel(raw); isLevel {
		return model.NormalizePriority(n), true, true
	}
	s, err := decodeString(raw)
	if err != nil {
		return model.PriorityMedium, true, false
	}
	p, ok = model.ParsePriority(s)
	return p, true, ok
}

// decodeLevel reads an integer given as a JSON number or numeric string.
func decodeLevel(raw json.RawMessage) (int, bool) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v, err := strconv.Atoi(n.String())
		return v, err == nil
	}
	s, err := decodeString(raw)
	if err != nil {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return v, err == nil
}

// --- Response DTOs ---

type taskResp struct {
	ID            string         `json:"id"`
	Content       string         `json:"content"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	Priority      int            `json:"priority"`
	PriorityLabel string         `json:"priorityLabel"`
	Status        string         `json:"status"`
	Deadline      *response.Date `json:"deadline" swaggertype:"string" example:"2024-05-10"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	title, description := model.SplitContent(t.Content)
	resp := taskResp{
		ID:            t.ID,
		Content:       t.Content,
		Title:         title,
		Description:   description,
		Category:      t.CategoryOrDefault(),
		Priority:      int(t.Priority),
		PriorityLabel: t.Priority.Label(),
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if t.HasDeadline() {
		d := response.Date(*t.Deadline)
		resp.Deadline = &d
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return listResp{Tasks: out, Total: len(out)}
}

type deleteResp struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type batchResultResp struct {
	ID      string `json:"id"`
	Outcome string `json:"outcome"`
}

type batchResp struct {
	Action   string            `json:"action"`
	Affected int               `json:"affected"`
	Deleted  *int              `json:"deleted,omitempty"`
	Updated  *int              `json:"updated,omitempty"`
	Results  []batchResultResp `json:"results"`
}

func newBatchResp(out task.BatchOutput) batchResp {
	resp := batchResp{
		Action:   string(out.Action),
		Affected: out.Affected,
		Results:  make([]batchResultResp, len(out.Results)),
	}
	n := out.Affected
	if out.Action == task.ActionDelete {
		resp.Deleted = &n
	} else {
		resp.Updated = &n
	}
	for i, r := range out.Results {
		resp.Results[i] = batchResultResp{ID: r.ID, Outcome: r.Outcome}
	}
	return resp
}
