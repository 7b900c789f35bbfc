package task

import (
	"context"

	"task-management/internal/model"
	"task-management/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Reads
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Today(ctx context.Context, sc model.Scope, input TodayInput) (TodayOutput, error)

	// Mutations, all scoped to sc.UserID
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	Patch(ctx context.Context, sc model.Scope, input PatchInput) (PatchOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Batch(ctx context.Context, sc model.Scope, input BatchInput) (BatchOutput, error)
}

// CalendarSyncer mirrors task deadlines into an external calendar.
// *gcalendar.Client satisfies it.
type CalendarSyncer interface {
	UpsertDeadline(ctx context.Context, ev gcalendar.DeadlineEvent) (string, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
