package query_test

import (
	"errors"
	"testing"
	"time"

	"task-management/internal/task/query"
	"task-management/pkg/datemath"
)

func TestParseSpec(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	t.Run("Empty gives defaults", func(t *testing.T) {
		spec, err := query.ParseSpec(query.RawSpec{}, parser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := query.DefaultSpec()
		if spec.StatusTab != want.StatusTab || spec.Date != want.Date || spec.Sort != want.Sort ||
			spec.Category != want.Category || spec.PriorityLabel != want.PriorityLabel {
			t.Errorf("ParseSpec(empty) = %+v, want %+v", spec, want)
		}
	})

	t.Run("From and To imply range", func(t *testing.T) {
		spec, err := query.ParseSpec(query.RawSpec{From: "2024-05-01", To: "2024-05-03"}, parser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Date != query.DateRange {
			t.Errorf("Date = %s, want range", spec.Date)
		}
		if !spec.To.Equal(time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("To = %v", spec.To)
		}
	})

	t.Run("Full spec", func(t *testing.T) {
		spec, err := query.ParseSpec(query.RawSpec{
			Status: "Completed", Date: "overdue", Category: "work", Priority: "HIGH", Keyword: " report ", Sort: "deadline",
		}, parser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.StatusTab != query.StatusCompleted || spec.Date != query.DateOverdue || spec.Category != "work" ||
			spec.PriorityLabel != "high" || spec.Keyword != "report" || spec.Sort != query.SortDeadline {
			t.Errorf("unexpected spec: %+v", spec)
		}
	})

	errCases := []struct {
		name string
		raw  query.RawSpec
		want error
	}{
		{name: "Bad status", raw: query.RawSpec{Status: "archived"}, want: query.ErrInvalidStatus},
		{name: "Bad date", raw: query.RawSpec{Date: "someday"}, want: query.ErrInvalidDate},
		{name: "Bad from", raw: query.RawSpec{From: "yesterday-ish"}, want: query.ErrInvalidRange},
		{name: "Reversed range", raw: query.RawSpec{From: "2024-05-03", To: "2024-05-01"}, want: query.ErrInvalidRange},
		{name: "Bad priority", raw: query.RawSpec{Priority: "urgent"}, want: query.ErrInvalidPriority},
		{name: "Bad sort", raw: query.RawSpec{Sort: "random"}, want: query.ErrInvalidSort},
	}
	for _, tt := range errCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := query.ParseSpec(tt.raw, parser)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseSpec() error = %v, want %v", err, tt.want)
			}
		})
	}
}
