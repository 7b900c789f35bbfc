package usecase

import (
	"context"

	"task-management/internal/model"
	"task-management/internal/task"
	repo "task-management/internal/task/repository"
)

// Batch applies one action to many of the caller's tasks in a single
// transaction. Ids the caller does not own, and malformed ids, are reported
// as not_found.
func (uc *implUseCase) Batch(ctx context.Context, sc model.Scope, input task.BatchInput) (task.BatchOutput, error) {
	ids := dedupe(input.IDs)
	if len(ids) == 0 {
		return task.BatchOutput{}, task.ErrEmptyIDs
	}
	lookup := without(ids, input.Malformed)

	opt := repo.BatchTasksOptions{
		UserID: sc.UserID,
		IDs:    lookup,
		Action: string(input.Action),
	}
	switch input.Action {
	case task.ActionDelete:
	case task.ActionComplete:
		opt.Status = model.StatusCompleted
	case task.ActionSetStatus:
		opt.Status = model.NormalizeStatus(input.Status)
	case task.ActionSetPriority:
		p := model.Priority(input.Priority)
		if err := checkPriority(p); err != nil {
			return task.BatchOutput{}, err
		}
		opt.Priority = p
	default:
		return task.BatchOutput{}, task.ErrUnsupportedAction
	}

	if len(lookup) == 0 {
		return task.BatchOutput{Action: input.Action, Results: batchResults(ids, nil)}, nil
	}

	var events map[string]string
	if input.Action == task.ActionDelete && uc.calendar != nil {
		events = uc.eventIDs(ctx, sc.UserID, lookup)
	}

	res, err := uc.repo.BatchTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Batch repo.BatchTasks: %v", err)
		return task.BatchOutput{}, err
	}
	uc.cache.Invalidate(sc.UserID)

	affected := make(map[string]struct{}, len(res.AffectedIDs))
	for _, id := range res.AffectedIDs {
		affected[id] = struct{}{}
		if eventID := events[id]; eventID != "" {
			uc.deleteEvent(ctx, id, eventID)
		}
	}

	return task.BatchOutput{
		Action:   input.Action,
		Affected: len(res.AffectedIDs),
		Results:  batchResults(ids, affected),
	}, nil
}

// batchResults reports every requested id in request order.
func batchResults(ids []string, affected map[string]struct{}) []task.BatchResult {
	results := make([]task.BatchResult, len(ids))
	for i, id := range ids {
		outcome := task.OutcomeNotFound
		if _, ok := affected[id]; ok {
			outcome = task.OutcomeOK
		}
		results[i] = task.BatchResult{ID: id, Outcome: outcome}
	}
	return results
}

// eventIDs maps the requested ids to their calendar events. A lookup
// failure only skips the calendar cleanup.
func (uc *implUseCase) eventIDs(ctx context.Context, userID string, ids []string) map[string]string {
	tasks, err := uc.allTasks(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Batch allTasks: %v", err)
		return nil
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	events := make(map[string]string)
	for _, t := range tasks {
		if _, ok := wanted[t.ID]; ok && t.CalendarEventID != "" {
			events[t.ID] = t.CalendarEventID
		}
	}
	return events
}
