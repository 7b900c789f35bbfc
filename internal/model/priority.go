package model

import (
	"strconv"
	"strings"
)

// Priority is a stored task priority on the 1/3/5 scale.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 3
	PriorityHigh   Priority = 5
)

const (
	LabelLow    = "low"
	LabelMedium = "medium"
	LabelHigh   = "high"
)

// Label buckets any level: >=5 high, >=3 medium, else low.
func (p Priority) Label() string {
	switch {
	case p >= PriorityHigh:
		return LabelHigh
	case p >= PriorityMedium:
		return LabelMedium
	default:
		return LabelLow
	}
}

// IsCanonical reports whether p is exactly one of 1, 3, 5.
func (p Priority) IsCanonical() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// PriorityFromLabel maps a label to its level. Unknown labels become medium.
func PriorityFromLabel(label string) Priority {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case LabelHigh, "高":
		return PriorityHigh
	case LabelLow, "低":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// IsPriorityLabel reports whether label is one of low, medium, high.
func IsPriorityLabel(label string) bool {
	switch label {
	case LabelLow, LabelMedium, LabelHigh:
		return true
	}
	return false
}

// NormalizePriority buckets an arbitrary level onto 1/3/5.
func NormalizePriority(level int) Priority {
	return PriorityFromLabel(Priority(level).Label())
}

// ParsePriority reads a label ("high") or a number ("4") and buckets it.
// ok is false when s is neither.
func ParsePriority(s string) (Priority, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return NormalizePriority(n), true
	}
	switch strings.ToLower(s) {
	case LabelLow, LabelMedium, LabelHigh, "高", "中", "低":
		return PriorityFromLabel(s), true
	}
	return PriorityMedium, false
}

// LegacyPriority maps the old low/medium/high/urgent 1..4 scale onto 1/3/5.
// Only migration code should call it; live input goes through NormalizePriority.
func LegacyPriority(level int) Priority {
	switch {
	case level >= 3:
		return PriorityHigh
	case level == 2:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
