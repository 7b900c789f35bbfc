package datemath

import "time"

// MatchKind tells how a date was found in free text.
type MatchKind string

const (
	MatchAbsolute MatchKind = "absolute"
	MatchRelative MatchKind = "relative"
)

// ParseResult holds a date found in free text.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
	Kind         MatchKind
	Matched      string
}

// DateLayout is the canonical calendar-date layout.
const DateLayout = "2006-01-02"
