package analytics

// Performance buckets the recent completion rate.
type Performance string

const (
	PerformanceExcellent Performance = "excellent"
	PerformanceGood      Performance = "good"
	PerformanceAverage   Performance = "average"
	PerformancePoor      Performance = "poor"
)

// TrendDays is the length of the trailing trend window.
const TrendDays = 7

// RecentDays is the tail of the trend window used for RecentRate.
const RecentDays = 3

// Bucket counts tasks in one group.
type Bucket struct {
	Total     int
	Completed int
}

// CategoryBucket is a Bucket for one category.
type CategoryBucket struct {
	Name string
	Bucket
}

// Priorities holds one bucket per priority label.
type Priorities struct {
	High   Bucket
	Medium Bucket
	Low    Bucket
}

// Day is one entry of the trend. Date is YYYY-MM-DD in the report location.
type Day struct {
	Date      string
	Created   int
	Completed int
}

// Report is the aggregated view of one user's tasks.
type Report struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int
	Categories     []CategoryBucket
	Priorities     Priorities
	Trend          []Day
	RecentRate     int
	Performance    Performance
	Summary        string
	Suggestions    []string
}
