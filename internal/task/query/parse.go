package query

import (
	"strings"

	"task-management/internal/model"
	"task-management/pkg/datemath"
)

// ParseSpec validates raw query values. Blank values take the defaults of
// DefaultSpec; from/to are read as calendar dates in the parser's timezone.
func ParseSpec(raw RawSpec, parser *datemath.Parser) (Spec, error) {
	spec := DefaultSpec()

	switch StatusTab(strings.ToLower(strings.TrimSpace(raw.Status))) {
	case "", StatusAll:
	case StatusPending:
		spec.StatusTab = StatusPending
	case StatusCompleted:
		spec.StatusTab = StatusCompleted
	default:
		return Spec{}, ErrInvalidStatus
	}

	switch d := DateFilter(strings.ToLower(strings.TrimSpace(raw.Date))); d {
	case "", DateAll:
	case DateToday, DateOverdue, DateUpcoming, DateRange:
		spec.Date = d
	default:
		return Spec{}, ErrInvalidDate
	}

	if raw.From != "" {
		from, ok := parser.ParseDate(raw.From)
		if !ok {
			return Spec{}, ErrInvalidRange
		}
		spec.From = &from
	}
	if raw.To != "" {
		to, ok := parser.ParseDate(raw.To)
		if !ok {
			return Spec{}, ErrInvalidRange
		}
		spec.To = &to
	}
	if spec.From != nil && spec.To != nil && spec.From.After(*spec.To) {
		return Spec{}, ErrInvalidRange
	}
	// from/to without an explicit date filter imply a range.
	if spec.Date == DateAll && (spec.From != nil || spec.To != nil) {
		spec.Date = DateRange
	}

	if c := strings.TrimSpace(raw.Category); c != "" {
		spec.Category = c
	}

	if p := strings.ToLower(strings.TrimSpace(raw.Priority)); p != "" && p != All {
		if !model.IsPriorityLabel(p) {
			return Spec{}, ErrInvalidPriority
		}
		spec.PriorityLabel = p
	}

	spec.Keyword = strings.TrimSpace(raw.Keyword)

	switch s := SortMode(strings.ToLower(strings.TrimSpace(raw.Sort))); s {
	case "":
	case SortCombined, SortDeadline, SortPriority:
		spec.Sort = s
	default:
		return Spec{}, ErrInvalidSort
	}

	return spec, nil
}
