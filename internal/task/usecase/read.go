package usecase

import (
	"context"

	"task-management/internal/model"
	"task-management/internal/task"
	"task-management/internal/task/cache"
	"task-management/internal/task/query"
	repo "task-management/internal/task/repository"
)

// List returns the caller's tasks, newest first, narrowed by input.Spec when set.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.allTasks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List allTasks: %v", err)
		return task.ListOutput{}, err
	}

	if input.Spec != nil {
		tasks = query.Apply(tasks, *input.Spec, uc.now().In(uc.days.Location()))
	}

	return task.ListOutput{Tasks: tasks}, nil
}

// Today returns the tasks due today in the configured location, most
// important first.
func (uc *implUseCase) Today(ctx context.Context, sc model.Scope, input task.TodayInput) (task.TodayOutput, error) {
	view := cache.ViewToday
	if input.IncludeNoDeadline {
		view = cache.ViewTodayWithNoDeadline
	}
	if tasks, ok := uc.cache.Get(sc.UserID, view); ok {
		return task.TodayOutput{Tasks: tasks}, nil
	}

	now := uc.now().In(uc.days.Location())
	from := uc.days.StartOfDay(now)
	to := uc.days.StartOfNextDay(now)

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:            sc.UserID,
		DeadlineFrom:      &from,
		DeadlineTo:        &to,
		IncludeNoDeadline: input.IncludeNoDeadline,
		OrderBy:           repo.OrderToday,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Today ListTasks: %v", err)
		return task.TodayOutput{}, err
	}

	uc.cache.Set(sc.UserID, view, tasks)
	return task.TodayOutput{Tasks: tasks}, nil
}

func (uc *implUseCase) allTasks(ctx context.Context, userID string) ([]model.Task, error) {
	if tasks, ok := uc.cache.Get(userID, cache.ViewAll); ok {
		return tasks, nil
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  userID,
		OrderBy: repo.OrderCreatedDesc,
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Set(userID, cache.ViewAll, tasks)
	return tasks, nil
}
