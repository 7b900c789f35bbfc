package usecase

import (
	"context"

	"task-management/internal/model"
	"task-management/internal/task"
	repo "task-management/internal/task/repository"
)

// Patch applies a partial update to one of the caller's tasks.
func (uc *implUseCase) Patch(ctx context.Context, sc model.Scope, input task.PatchInput) (task.PatchOutput, error) {
	if input.ID == "" {
		return task.PatchOutput{}, task.ErrTaskNotFound
	}
	if input.IsEmpty() {
		return task.PatchOutput{}, task.ErrEmptyPatch
	}

	opt := repo.UpdateTaskOptions{
		ID:            input.ID,
		UserID:        sc.UserID,
		Priority:      input.Priority,
		Deadline:      input.Deadline,
		ClearDeadline: input.ClearDeadline,
	}
	if input.Content != nil {
		content, err := cleanContent(*input.Content)
		if err != nil {
			return task.PatchOutput{}, err
		}
		opt.Content = &content
	}
	if input.Category != nil {
		category := model.NormalizeCategory(*input.Category)
		opt.Category = &category
	}
	if input.Priority != nil {
		if err := checkPriority(*input.Priority); err != nil {
			return task.PatchOutput{}, err
		}
	}
	if input.Status != nil {
		status := model.NormalizeStatus(*input.Status)
		opt.Status = &status
	}

	var previousEventID string
	if input.ClearDeadline && uc.calendar != nil {
		prev, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Patch repo.GetOneTask: %v", err)
			return task.PatchOutput{}, err
		}
		previousEventID = prev.CalendarEventID
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Patch repo.UpdateTask: %v", err)
		return task.PatchOutput{}, err
	}
	if t.ID == "" {
		return task.PatchOutput{}, task.ErrTaskNotFound
	}
	uc.cache.Invalidate(sc.UserID)

	switch {
	case t.HasDeadline():
		t = uc.syncDeadline(ctx, t)
	case previousEventID != "":
		uc.removeEvent(ctx, t.ID, previousEventID)
		t.CalendarEventID = ""
	}

	return task.PatchOutput{Task: t}, nil
}

// Delete removes one of the caller's tasks.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if id == "" {
		return task.ErrTaskNotFound
	}

	var eventID string
	if uc.calendar != nil {
		prev, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Delete repo.GetOneTask: %v", err)
			return err
		}
		eventID = prev.CalendarEventID
	}

	n, err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete repo.DeleteTask: %v", err)
		return err
	}
	if n == 0 {
		return task.ErrTaskNotFound
	}
	uc.cache.Invalidate(sc.UserID)

	if eventID != "" {
		uc.deleteEvent(ctx, id, eventID)
	}
	return nil
}
