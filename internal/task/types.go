package task

import (
	"time"

	"task-management/internal/model"
	"task-management/internal/task/query"
)

// BatchAction names a bulk operation.
type BatchAction string

const (
	ActionComplete    BatchAction = "complete"
	ActionDelete      BatchAction = "delete"
	ActionSetPriority BatchAction = "setPriority"
	ActionSetStatus   BatchAction = "setStatus"
)

// Batch outcomes per id.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
)

// --- UseCase Inputs ---

type ListInput struct {
	// Spec is nil for the plain created-at-desc listing.
	Spec *query.Spec
}

type TodayInput struct {
	IncludeNoDeadline bool
}

type CreateInput struct {
	Content  string
	Category string
	Priority *model.Priority // nil → medium
	Deadline *time.Time
	Status   string
}

// PatchInput leaves nil fields untouched.
type PatchInput struct {
	ID            string
	Content       *string
	Category      *string
	Priority      *model.Priority
	Status        *string
	Deadline      *time.Time
	ClearDeadline bool
}

func (in PatchInput) IsEmpty() bool {
	return in.Content == nil && in.Category == nil && in.Priority == nil &&
		in.Status == nil && in.Deadline == nil && !in.ClearDeadline
}

type BatchInput struct {
	IDs []string
	// Malformed lists entries of IDs that cannot name a task. They are
	// reported as not found and never reach storage.
	Malformed []string
	Action    BatchAction
	Priority  int
	Status    string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tasks []model.Task
}

type TodayOutput struct {
	Tasks []model.Task
}

type CreateOutput struct {
	Task model.Task
}

type PatchOutput struct {
	Task model.Task
}

type BatchResult struct {
	ID      string
	Outcome string
}

type BatchOutput struct {
	Action   BatchAction
	Affected int
	Results  []BatchResult
}
