package query

import (
	"math"
	"sort"
	"strings"
	"time"

	"task-management/internal/model"
	"task-management/pkg/datemath"
)

// Apply filters and orders tasks according to spec. The day windows are
// computed in now's location. The input slice is never modified.
func Apply(tasks []model.Task, spec Spec, now time.Time) []model.Task {
	days := datemath.NewParserInLocation(now.Location())
	startOfToday := days.StartOfDay(now)
	startOfTomorrow := days.StartOfNextDay(now)
	keyword := strings.ToLower(strings.TrimSpace(spec.Keyword))

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchStatus(t, spec.StatusTab) {
			continue
		}
		if !matchDate(t, spec, days, startOfToday, startOfTomorrow) {
			continue
		}
		if spec.Category != "" && spec.Category != All && t.CategoryOrDefault() != spec.Category {
			continue
		}
		if spec.PriorityLabel != "" && spec.PriorityLabel != All && t.Priority.Label() != spec.PriorityLabel {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(t.Content), keyword) {
			continue
		}
		out = append(out, t)
	}

	Sort(out, spec.Sort, now)
	return out
}

// Sort orders tasks in place. Ties keep their input order.
func Sort(tasks []model.Task, mode SortMode, now time.Time) {
	switch mode {
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority > tasks[j].Priority
		})
	case SortDeadline:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i], tasks[j]
			switch {
			case !a.HasDeadline():
				return false
			case !b.HasDeadline():
				return true
			default:
				return a.Deadline.Before(*b.Deadline)
			}
		})
	default:
		scores := make([]float64, len(tasks))
		idx := make([]int, len(tasks))
		for i := range tasks {
			scores[i] = CombinedScore(tasks[i], now)
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return scores[idx[a]] > scores[idx[b]]
		})
		sorted := make([]model.Task, len(tasks))
		for i, k := range idx {
			sorted[i] = tasks[k]
		}
		copy(tasks, sorted)
	}
}

// CombinedScore is priority*10 plus max(0, 10 - daysUntilDeadline).
// Undated tasks get no urgency.
func CombinedScore(t model.Task, now time.Time) float64 {
	score := float64(t.Priority) * 10
	if !t.HasDeadline() {
		return score
	}
	days := math.Floor(t.Deadline.Sub(now).Hours() / 24)
	return score + math.Max(0, UrgencyWindowDays-days)
}

func matchStatus(t model.Task, tab StatusTab) bool {
	switch tab {
	case StatusPending:
		return t.Status == model.StatusPending
	case StatusCompleted:
		return t.Status == model.StatusCompleted
	default:
		return true
	}
}

func matchDate(t model.Task, spec Spec, days *datemath.Parser, startOfToday, startOfTomorrow time.Time) bool {
	if spec.Date == "" || spec.Date == DateAll {
		return true
	}
	if !t.HasDeadline() {
		return false
	}
	d := *t.Deadline

	switch spec.Date {
	case DateToday:
		return !d.Before(startOfToday) && d.Before(startOfTomorrow)
	case DateOverdue:
		return !t.IsCompleted() && d.Before(startOfToday)
	case DateUpcoming:
		return d.After(startOfToday)
	case DateRange:
		if spec.From != nil && d.Before(days.StartOfDay(*spec.From)) {
			return false
		}
		if spec.To != nil && !d.Before(days.StartOfNextDay(*spec.To)) {
			return false
		}
		return true
	default:
		return true
	}
}
