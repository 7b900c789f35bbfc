package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe   = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	phraseRe       = regexp.MustCompile(`\b(?:in \d+ (?:days?|weeks?|months?)|next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`)
	absoluteDateRe = regexp.MustCompile(`(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})`)

	fallbackLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006/01/02",
		"2006.01.02",
	}
)

// relativeWord maps a phrase to a day offset. Longer phrases come first so
// "大后天" is not read as "后天".
type relativeWord struct {
	phrase string
	offset int
}

var relativeWords = []relativeWord{
	{"day after tomorrow", 2},
	{"大后天", 3},
	{"后天", 2},
	{"明天", 1},
	{"明日", 1},
	{"今天", 0},
	{"今日", 0},
	{"昨天", -1},
	{"tomorrow", 1},
	{"today", 0},
	{"yesterday", -1},
}

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Shanghai"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserInLocation creates a parser bound to an already-loaded location.
func NewParserInLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	for _, w := range relativeWords {
		if relative == w.phrase {
			return p.StartOfDay(baseTime.AddDate(0, 0, w.offset)), nil
		}
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.StartOfDay(baseTime), nil
}

// ParseDate parses a stored or user-supplied deadline. YYYY-MM-DD is read
// literally in the parser's timezone so no day shift can happen; other
// layouts are accepted and truncated to their calendar day. ok is false
// for anything unparseable.
func (p *Parser) ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.ParseInLocation(DateLayout, s, p.location); err == nil {
		return t, true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return p.StartOfDay(t), true
		}
	}
	return time.Time{}, false
}

// Scan looks for a deadline inside free text. An absolute YYYY[-/.]MM[-/.]DD
// date takes precedence over "in N days" or "next <weekday>" phrases, which
// take precedence over single relative words.
func (p *Parser) Scan(text string, baseTime time.Time) (ParseResult, bool) {
	if m := absoluteDateRe.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if t, ok := p.validDate(year, month, day); ok {
			return ParseResult{AbsoluteTime: t, IsAllDay: true, Kind: MatchAbsolute, Matched: m[0]}, true
		}
	}

	lower := strings.ToLower(text)
	if m := phraseRe.FindString(lower); m != "" {
		if t, err := p.Parse(m, baseTime); err == nil {
			return ParseResult{AbsoluteTime: t, IsAllDay: true, Kind: MatchRelative, Matched: m}, true
		}
	}

	for _, w := range relativeWords {
		if strings.Contains(lower, w.phrase) {
			return ParseResult{
				AbsoluteTime: p.StartOfDay(baseTime.AddDate(0, 0, w.offset)),
				IsAllDay:     true,
				Kind:         MatchRelative,
				Matched:      w.phrase,
			}, true
		}
	}
	return ParseResult{}, false
}

func (p *Parser) validDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// StartOfNextDay returns midnight of the day after t, DST-safe.
func (p *Parser) StartOfNextDay(t time.Time) time.Time {
	s := p.StartOfDay(t)
	return time.Date(s.Year(), s.Month(), s.Day()+1, 0, 0, 0, 0, p.location)
}

// FormatDate renders t as YYYY-MM-DD in the parser's timezone.
func (p *Parser) FormatDate(t time.Time) string {
	return t.In(p.location).Format(DateLayout)
}
