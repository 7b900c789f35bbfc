package usecase

import (
	"context"

	"task-management/internal/model"
	"task-management/pkg/gcalendar"
)

// syncDeadline mirrors t's deadline into the calendar. Failures are logged
// and t is returned unchanged.
func (uc *implUseCase) syncDeadline(ctx context.Context, t model.Task) model.Task {
	if uc.calendar == nil || !t.HasDeadline() {
		return t
	}

	title, description := model.SplitContent(t.Content)
	eventID, err := uc.calendar.UpsertDeadline(ctx, gcalendar.DeadlineEvent{
		CalendarID:  uc.calendarID,
		EventID:     t.CalendarEventID,
		Summary:     title,
		Description: description,
		Date:        *t.Deadline,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncDeadline calendar.UpsertDeadline task=%s: %v", t.ID, err)
		return t
	}
	if eventID == t.CalendarEventID {
		return t
	}

	if err := uc.repo.SetCalendarEventID(ctx, t.ID, eventID); err != nil {
		uc.l.Warnf(ctx, "uc.syncDeadline repo.SetCalendarEventID task=%s: %v", t.ID, err)
		return t
	}
	t.CalendarEventID = eventID
	return t
}

// removeEvent deletes the calendar event of a task that lost its deadline.
func (uc *implUseCase) removeEvent(ctx context.Context, taskID, eventID string) {
	uc.deleteEvent(ctx, taskID, eventID)
	if err := uc.repo.SetCalendarEventID(ctx, taskID, ""); err != nil {
		uc.l.Warnf(ctx, "uc.removeEvent repo.SetCalendarEventID task=%s: %v", taskID, err)
	}
}

func (uc *implUseCase) deleteEvent(ctx context.Context, taskID, eventID string) {
	if uc.calendar == nil {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, eventID); err != nil {
		uc.l.Warnf(ctx, "uc.deleteEvent calendar.DeleteEvent task=%s: %v", taskID, err)
	}
}
