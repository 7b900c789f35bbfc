package repository

import (
	"context"

	"task-management/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetOneTask returns a zero-value Task (ID == "") when nothing matches.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// UpdateTask returns a zero-value Task when the id is not owned by opt.UserID.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) (int64, error)
	// BatchTasks applies one action to every owned id inside a transaction.
	BatchTasks(ctx context.Context, opt BatchTasksOptions) (BatchTasksResult, error)
	SetCalendarEventID(ctx context.Context, id, eventID string) error
	MigrateLegacyPriorities(ctx context.Context, opt MigrateLegacyOptions) (int64, error)
}
