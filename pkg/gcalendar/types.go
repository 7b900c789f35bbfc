package gcalendar

import "time"

// DeadlineEvent is an all-day event marking a task deadline.
// EventID is empty when the event has not been created yet.
type DeadlineEvent struct {
	CalendarID  string
	EventID     string
	Summary     string
	Description string
	Date        time.Time
}
