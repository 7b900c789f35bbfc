package analytics

import (
	"math"
	"sort"
	"time"

	"task-management/internal/model"
)

// Aggregate computes the report of tasks as seen at now in loc. Tasks with
// zero timestamps are left out of the trend only.
func Aggregate(tasks []model.Task, now time.Time, loc *time.Location) Report {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	r := Report{Total: len(tasks)}
	categories := map[string]*Bucket{}

	days := trendDays(now)
	index := make(map[string]int, len(days))
	for i, d := range days {
		index[d.Date] = i
	}

	for _, t := range tasks {
		done := t.IsCompleted()
		if done {
			r.Completed++
		}

		name := t.CategoryOrDefault()
		b, ok := categories[name]
		if !ok {
			b = &Bucket{}
			categories[name] = b
		}
		count(b, done)

		switch t.Priority.Label() {
		case model.LabelHigh:
			count(&r.Priorities.High, done)
		case model.LabelMedium:
			count(&r.Priorities.Medium, done)
		default:
			count(&r.Priorities.Low, done)
		}

		if !t.CreatedAt.IsZero() {
			if i, ok := index[dayKey(t.CreatedAt, loc)]; ok {
				days[i].Created++
			}
		}
		if done && !t.UpdatedAt.IsZero() {
			if i, ok := index[dayKey(t.UpdatedAt, loc)]; ok {
				days[i].Completed++
			}
		}
	}

	r.Pending = r.Total - r.Completed
	r.CompletionRate = percent(r.Completed, r.Total)
	r.Categories = sortedCategories(categories)
	r.Trend = days

	var recentCreated, recentCompleted int
	for _, d := range days[len(days)-RecentDays:] {
		recentCreated += d.Created
		recentCompleted += d.Completed
	}
	rate := 0.0
	if recentCreated > 0 {
		rate = 100 * float64(recentCompleted) / float64(recentCreated)
	}
	r.RecentRate = int(math.Round(rate))
	r.Performance = Classify(rate)
	r.Summary = summaries[r.Performance]
	r.Suggestions = Suggestions(r.Performance)

	return r
}

// Classify buckets a completion percentage.
func Classify(rate float64) Performance {
	switch {
	case rate >= 80:
		return PerformanceExcellent
	case rate >= 60:
		return PerformanceGood
	case rate >= 40:
		return PerformanceAverage
	default:
		return PerformancePoor
	}
}

var summaries = map[Performance]string{
	PerformanceExcellent: "近期执行力优秀",
	PerformanceGood:      "近期执行力良好",
	PerformanceAverage:   "近期执行力一般",
	PerformancePoor:      "近期需要改进",
}

var suggestions = map[Performance][]string{
	PerformanceExcellent: {"继续保持良好的执行习惯", "可以考虑增加更具挑战性的任务"},
	PerformanceGood:      {"尝试优化时间管理", "关注高优先级任务的完成"},
	PerformanceAverage:   {"建议分解大任务为小任务", "设置更明确的截止时间"},
	PerformancePoor:      {"重新评估任务优先级", "减少同时进行的任务数量", "寻找执行障碍并解决"},
}

// Suggestions returns the fixed advice for p.
func Suggestions(p Performance) []string {
	return append([]string(nil), suggestions[p]...)
}

func count(b *Bucket, done bool) {
	b.Total++
	if done {
		b.Completed++
	}
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// trendDays returns the trailing TrendDays calendar days ending today,
// oldest first.
func trendDays(now time.Time) []Day {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	days := make([]Day, TrendDays)
	for i := range days {
		day := today.AddDate(0, 0, i-(TrendDays-1))
		days[i] = Day{Date: day.Format(time.DateOnly)}
	}
	return days
}

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}

func sortedCategories(m map[string]*Bucket) []CategoryBucket {
	out := make([]CategoryBucket, 0, len(m))
	for name, b := range m {
		out = append(out, CategoryBucket{Name: name, Bucket: *b})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}
