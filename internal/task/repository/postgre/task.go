package postgre

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task-management/internal/model"
	repo "task-management/internal/task/repository"
)

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	row := taskRow{
		UserID:   opt.UserID,
		Content:  opt.Content,
		Category: opt.Category,
		Priority: int(opt.Priority),
		Status:   string(opt.Status),
		Deadline: dateOnly(opt.Deadline),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return r.toModel(row), nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	var row taskRow
	err := r.buildGetOneQuery(r.db.WithContext(ctx), opt).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return r.toModel(row), nil
}

// ListTasks returns every Task of a user matching the deadline window.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	var rows []taskRow
	if err := r.buildListQuery(r.db.WithContext(ctx), opt).Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = r.toModel(row)
	}
	return tasks, nil
}

// UpdateTask applies a partial update to an owned Task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	updates := r.buildUpdates(opt)
	updates["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&taskRow{}).
		Where("id = ? AND user_id = ?", opt.ID, opt.UserID).
		Updates(updates)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), res.Error)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.Task{}, nil
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID, UserID: opt.UserID})
}

// DeleteTask removes an owned Task and returns the number of deleted rows.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", opt.ID, opt.UserID).
		Delete(&taskRow{})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), res.Error)
		return 0, repo.ErrFailedToDelete
	}
	return res.RowsAffected, nil
}

// SetCalendarEventID stores the synced calendar event id of a Task.
func (r *implRepository) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	err := r.db.WithContext(ctx).Model(&taskRow{}).
		Where("id = ?", id).
		UpdateColumn("calendar_event_id", eventID).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
