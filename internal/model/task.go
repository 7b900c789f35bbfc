package model

import "time"

// DefaultCategory is used when a task has no category.
const DefaultCategory = "other"

// Task is a single to-do item owned by one user.
type Task struct {
	ID        string
	UserID    string
	Content   string
	Category  string
	Priority  Priority
	Status    Status
	Deadline  *time.Time // calendar date at local midnight, nil when undated
	CreatedAt time.Time
	UpdatedAt time.Time

	CalendarEventID string
}

// HasDeadline reports whether the task is dated.
func (t Task) HasDeadline() bool {
	return t.Deadline != nil && !t.Deadline.IsZero()
}

// IsCompleted reports whether the task is done.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// CategoryOrDefault returns the category, or DefaultCategory when blank.
func (t Task) CategoryOrDefault() string {
	return NormalizeCategory(t.Category)
}
