package repository

import (
	"time"

	"task-management/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID   string
	Content  string
	Category string
	Priority model.Priority
	Status   model.Status
	Deadline *time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// Ordering presets for ListTasks.
const (
	OrderCreatedDesc = "created_at DESC"
	OrderToday       = "priority DESC, deadline ASC NULLS LAST, created_at ASC"
)

// ListTasksOptions holds filter parameters for listing a user's Tasks.
// DeadlineFrom is inclusive, DeadlineTo exclusive.
type ListTasksOptions struct {
	UserID            string
	DeadlineFrom      *time.Time
	DeadlineTo        *time.Time
	IncludeNoDeadline bool
	OrderBy           string
}

// UpdateTaskOptions holds a partial update. Nil fields are left untouched.
type UpdateTaskOptions struct {
	ID            string
	UserID        string
	Content       *string
	Category      *string
	Priority      *model.Priority
	Status        *model.Status
	Deadline      *time.Time
	ClearDeadline bool
}

// DeleteTaskOptions identifies one owned Task.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}

// BatchTasksOptions holds one bulk action. Priority and Status are read
// according to Action.
type BatchTasksOptions struct {
	UserID   string
	IDs      []string
	Action   string
	Priority model.Priority
	Status   model.Status
}

// BatchTasksResult lists the ids that belonged to the caller and were changed.
type BatchTasksResult struct {
	AffectedIDs []string
}

// MigrateLegacyOptions selects rows written on the old 1..4 scale.
type MigrateLegacyOptions struct {
	CreatedBefore time.Time
	DryRun        bool
}
