package usecase

import (
	"context"
	"fmt"

	"task-management/internal/analytics"
	"task-management/internal/model"
	repo "task-management/internal/task/repository"
)

// Report aggregates every task of the caller.
func (uc *implUseCase) Report(ctx context.Context, sc model.Scope) (analytics.Report, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		OrderBy: repo.OrderCreatedDesc,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Report repo.ListTasks: %v", err)
		return analytics.Report{}, fmt.Errorf("%w: %v", analytics.ErrLoadTasks, err)
	}

	return analytics.Aggregate(tasks, uc.now(), uc.loc), nil
}
