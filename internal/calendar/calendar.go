// Package calendar computes the Monday–Sunday week and calendar-month windows
// the schedule views are anchored on. All dates cross package boundaries as
// ISO YYYY-MM-DD strings.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

const ISOLayout = "2006-01-02"

type Mode string

const (
	ModeWeek  Mode = "WEEK"
	ModeMonth Mode = "MONTH"
)

// ParseMode accepts "week"/"month" in any case; blank means week.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(ModeWeek):
		return ModeWeek, nil
	case string(ModeMonth):
		return ModeMonth, nil
	default:
		return "", fmt.Errorf("unknown schedule mode %q", s)
	}
}

type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether iso falls inside the inclusive range.
func (r Range) Contains(iso string) bool {
	return iso >= r.Start && iso <= r.End
}

// ParseISO parses a YYYY-MM-DD date at midnight in loc.
func ParseISO(iso string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(ISOLayout, strings.TrimSpace(iso), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", iso, err)
	}
	return t, nil
}

func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// Today returns now's calendar date as observed in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return FormatISO(now.In(loc))
}

// WeekRange returns the Monday of the week containing d and the following
// Sunday, computed in d's location. Sunday belongs to the week that started
// six days earlier.
func WeekRange(d time.Time) Range {
	offset := int(time.Monday) - int(d.Weekday())
	if d.Weekday() == time.Sunday {
		offset = -6
	}

	y, m, day := d.Date()
	monday := time.Date(y, m, day+offset, 0, 0, 0, 0, d.Location())
	sunday := monday.AddDate(0, 0, 6)

	return Range{Start: FormatISO(monday), End: FormatISO(sunday)}
}

// MonthRange returns the first and last calendar day of d's month.
func MonthRange(d time.Time) Range {
	y, m, _ := d.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, d.Location())
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, d.Location())

	return Range{Start: FormatISO(first), End: FormatISO(last)}
}

// RangeFor picks the week or month window around anchor.
func RangeFor(mode Mode, anchor time.Time) Range {
	if mode == ModeMonth {
		return MonthRange(anchor)
	}
	return WeekRange(anchor)
}

func ShiftDays(iso string, n int) (string, error) {
	t, err := ParseISO(iso, time.UTC)
	if err != nil {
		return "", err
	}
	return FormatISO(t.AddDate(0, 0, n)), nil
}

// ShiftMonths moves n months and lands on the first of the resulting month,
// so Jan 31 + 1 month is Feb 1 rather than an overflow into March.
func ShiftMonths(iso string, n int) (string, error) {
	t, err := ParseISO(iso, time.UTC)
	if err != nil {
		return "", err
	}
	y, m, _ := t.Date()
	return FormatISO(time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)), nil
}

// Step moves an anchor one period forward (dir > 0) or backward (dir < 0).
func Step(mode Mode, anchor string, dir int) (string, error) {
	if mode == ModeMonth {
		return ShiftMonths(anchor, dir)
	}
	return ShiftDays(anchor, 7*dir)
}
