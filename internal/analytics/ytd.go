// Package analytics derives year-to-date statistics from a snapshot of
// sessions. Every function here is pure: it reads its arguments, never
// mutates them, and performs no I/O.
package analytics

import (
	"cmp"
	"slices"
	"strconv"
	"time"

	"github.com/alexanderramin/pokerlog/internal/domain"
)

// Window is the inclusive range a year-to-date filter admits.
type Window struct {
	Start time.Time
	End   time.Time
}

// YearToDate returns the window from Jan 1 of year at local midnight
// through the end of asOf's calendar day, in asOf's location.
func YearToDate(year int, asOf time.Time) Window {
	loc := asOf.Location()
	y, m, d := asOf.Date()
	return Window{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(y, m, d, 23, 59, 59, 0, loc),
	}
}

// Contains reports whether the midday anchor of day lies inside w.
func (w Window) Contains(day domain.CalendarDay) bool {
	at := day.At(w.Start.Location())
	return !at.Before(w.Start) && !at.After(w.End)
}

// FilterYearToDate returns the sessions dated from Jan 1 of year through
// asOf. Sessions whose date does not parse are dropped.
func FilterYearToDate(sessions []domain.Session, year int, asOf time.Time) []domain.Session {
	w := YearToDate(year, asOf)
	var out []domain.Session
	for _, s := range sessions {
		day, ok := domain.ParseLocalDayID(s.Date)
		if !ok {
			continue
		}
		if day.Year != year || !w.Contains(day) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SortNewestFirst orders sessions by date string descending. Sessions on
// the same day keep their relative order.
func SortNewestFirst(sessions []domain.Session) {
	slices.SortStableFunc(sessions, func(a, b domain.Session) int {
		return cmp.Compare(b.Date, a.Date)
	})
}

// AvailableYears lists the years that have sessions plus the current and
// previous year, newest first.
func AvailableYears(sessions []domain.Session, now time.Time) []int {
	seen := map[int]bool{
		now.Year():     true,
		now.Year() - 1: true,
	}
	for _, s := range sessions {
		if len(s.Date) < 4 {
			continue
		}
		y, err := strconv.Atoi(s.Date[:4])
		if err != nil || y <= 0 {
			continue
		}
		seen[y] = true
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	slices.SortFunc(years, func(a, b int) int { return cmp.Compare(b, a) })
	return years
}
