package usecase

import (
	"context"

	"task-management/internal/model"
	"task-management/internal/task"
	repo "task-management/internal/task/repository"
)

// Create stores a new task for the caller. Category defaults to "other",
// priority to medium and status to pending.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	content, err := cleanContent(input.Content)
	if err != nil {
		return task.CreateOutput{}, err
	}

	priority := model.PriorityMedium
	if input.Priority != nil {
		if err := checkPriority(*input.Priority); err != nil {
			return task.CreateOutput{}, err
		}
		priority = *input.Priority
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:   sc.UserID,
		Content:  content,
		Category: model.NormalizeCategory(input.Category),
		Priority: priority,
		Status:   model.NormalizeStatus(input.Status),
		Deadline: input.Deadline,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.CreateTask: %v", err)
		return task.CreateOutput{}, err
	}
	uc.cache.Invalidate(sc.UserID)

	if t.HasDeadline() {
		t = uc.syncDeadline(ctx, t)
	}

	return task.CreateOutput{Task: t}, nil
}
