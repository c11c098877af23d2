package analytics

import (
	"time"

	"github.com/alexanderramin/pokerlog/internal/domain"
)

// Report bundles every statistic shown for one year.
type Report struct {
	Year        int
	From        domain.CalendarDay
	Through     domain.CalendarDay
	Sessions    []domain.Session
	Summary     Summary
	Months      []MonthBucket
	Weekdays    []WeekdayBucket
	Days        []DayBucket
	BestMonth   Best[MonthBucket]
	BestWeekday Best[WeekdayBucket]
	BestDay     Best[DayBucket]
}

// BuildReport filters sessions to the year-to-date window ending at asOf
// and computes all groupings over that subset. The input slice is not
// modified; the report's session list is a sorted copy.
func BuildReport(sessions []domain.Session, year int, asOf time.Time) Report {
	ytd := FilterYearToDate(sessions, year, asOf)
	SortNewestFirst(ytd)

	months := ByMonth(ytd)
	weekdays := ByWeekday(ytd)
	days := ByDay(ytd)

	through := domain.DayOf(asOf)
	if yearEnd := (domain.CalendarDay{Year: year, Month: time.December, Day: 31}); yearEnd.Before(through) {
		through = yearEnd
	}

	return Report{
		Year:        year,
		From:        domain.CalendarDay{Year: year, Month: time.January, Day: 1},
		Through:     through,
		Sessions:    ytd,
		Summary:     Summarize(ytd),
		Months:      months,
		Weekdays:    weekdays,
		Days:        days,
		BestMonth:   BestMonth(months),
		BestWeekday: BestWeekday(weekdays),
		BestDay:     BestDay(days),
	}
}
