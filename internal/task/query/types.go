package query

import "time"

// StatusTab narrows by task status.
type StatusTab string

const (
	StatusAll       StatusTab = "all"
	StatusPending   StatusTab = "pending"
	StatusCompleted StatusTab = "completed"
)

// DateFilter narrows by deadline.
type DateFilter string

const (
	DateAll      DateFilter = "all"
	DateToday    DateFilter = "today"
	DateOverdue  DateFilter = "overdue"
	DateUpcoming DateFilter = "upcoming"
	DateRange    DateFilter = "range"
)

// SortMode orders the filtered result.
type SortMode string

const (
	SortCombined SortMode = "combined"
	SortDeadline SortMode = "deadline"
	SortPriority SortMode = "priority"
)

// All matches every category or priority label.
const All = "all"

// UrgencyWindowDays is the decay window of the combined score's urgency term.
// Pinned: changing it changes the default ordering users see.
const UrgencyWindowDays = 10

// Spec is a filter and sort specification.
type Spec struct {
	StatusTab     StatusTab
	Date          DateFilter
	From          *time.Time
	To            *time.Time
	Category      string
	PriorityLabel string
	Keyword       string
	Sort          SortMode
}

// RawSpec carries unvalidated query-string values.
type RawSpec struct {
	Status   string
	Date     string
	From     string
	To       string
	Category string
	Priority string
	Keyword  string
	Sort     string
}

// IsEmpty reports whether no parameter was supplied.
func (r RawSpec) IsEmpty() bool {
	return r == RawSpec{}
}

// DefaultSpec matches everything and uses the combined ordering.
func DefaultSpec() Spec {
	return Spec{
		StatusTab:     StatusAll,
		Date:          DateAll,
		Category:      All,
		PriorityLabel: All,
		Sort:          SortCombined,
	}
}
