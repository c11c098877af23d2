package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayIDLayout is the canonical text form of a calendar day.
const DayIDLayout = "2006-01-02"

// anchorHour is the local hour a parsed day is pinned to. Midday keeps
// date-only comparisons clear of DST transitions at either end of the day.
const anchorHour = 12

// CalendarDay is a local calendar date with no time-of-day component.
type CalendarDay struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the local calendar day of t.
func DayOf(t time.Time) CalendarDay {
	y, m, d := t.Date()
	return CalendarDay{Year: y, Month: m, Day: d}
}

// ToLocalDayID formats t as YYYY-MM-DD using t's own calendar fields.
func ToLocalDayID(t time.Time) string {
	return DayOf(t).ID()
}

// ParseLocalDayID parses a strict Y-M-D numeric triple. It reports false
// when a component is missing, non-numeric, zero, or outside the calendar.
func ParseLocalDayID(s string) (CalendarDay, bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return CalendarDay{}, false
	}

	var nums [3]int
	for i, p := range parts {
		n, ok := parsePositive(p)
		if !ok {
			return CalendarDay{}, false
		}
		nums[i] = n
	}

	day := CalendarDay{Year: nums[0], Month: time.Month(nums[1]), Day: nums[2]}
	if day.Month > time.December || day.Day > daysIn(day.Year, day.Month) {
		return CalendarDay{}, false
	}
	return day, true
}

func parsePositive(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of month.
	return time.Date(year, month+1, 0, anchorHour, 0, 0, 0, time.UTC).Day()
}

// At returns the day anchored at midday in loc.
func (d CalendarDay) At(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, anchorHour, 0, 0, 0, loc)
}

// Weekday returns the day of the week, Sunday first.
func (d CalendarDay) Weekday() time.Weekday {
	return d.At(time.UTC).Weekday()
}

// ID returns the zero-padded YYYY-MM-DD form.
func (d CalendarDay) ID() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDay) String() string {
	return d.ID()
}

// Before reports whether d falls on an earlier calendar day than o.
func (d CalendarDay) Before(o CalendarDay) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}
