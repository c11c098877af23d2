package analytics

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/montanaflynn/stats"
)

// Totals is the content of one aggregation bucket.
type Totals struct {
	Profit   float64
	Hours    float64
	Sessions int
}

func (t *Totals) add(s domain.Session) {
	t.Profit += s.Profit
	t.Hours += s.Hours
	t.Sessions++
}

// MonthBucket holds the totals for one month of the year.
type MonthBucket struct {
	Month time.Month
	Totals
}

// WeekdayBucket holds the totals for one day of the week.
type WeekdayBucket struct {
	Weekday time.Weekday
	Totals
}

// DayBucket holds the totals for one calendar day.
type DayBucket struct {
	Day domain.CalendarDay
	Key string
	Totals
}

// ByMonth folds sessions into twelve buckets, January first. Empty months
// are present with a zero session count.
func ByMonth(sessions []domain.Session) []MonthBucket {
	months := make([]MonthBucket, 12)
	for i := range months {
		months[i].Month = time.Month(i + 1)
	}
	for _, s := range sessions {
		day, ok := domain.ParseLocalDayID(s.Date)
		if !ok {
			continue
		}
		months[day.Month-1].add(s)
	}
	return months
}

// ByWeekday folds sessions into seven buckets, Sunday first.
func ByWeekday(sessions []domain.Session) []WeekdayBucket {
	days := make([]WeekdayBucket, 7)
	for i := range days {
		days[i].Weekday = time.Weekday(i)
	}
	for _, s := range sessions {
		day, ok := domain.ParseLocalDayID(s.Date)
		if !ok {
			continue
		}
		days[day.Weekday()].add(s)
	}
	return days
}

// ByDay folds sessions into one bucket per distinct stored date string,
// sorted by that string. Only dates that actually occur are returned, so
// "2024-3-9" and "2024-03-09" stay separate buckets.
func ByDay(sessions []domain.Session) []DayBucket {
	index := make(map[string]int)
	var days []DayBucket
	for _, s := range sessions {
		day, ok := domain.ParseLocalDayID(s.Date)
		if !ok {
			continue
		}
		key := strings.TrimSpace(s.Date)
		i, seen := index[key]
		if !seen {
			i = len(days)
			index[key] = i
			days = append(days, DayBucket{Day: day, Key: key})
		}
		days[i].add(s)
	}
	slices.SortFunc(days, func(a, b DayBucket) int { return cmp.Compare(a.Key, b.Key) })
	return days
}

// Summary is the headline statistics over a set of sessions.
type Summary struct {
	Sessions            int
	TotalProfit         float64
	TotalHours          float64
	AvgProfitPerSession float64
	HourlyRate          float64
}

// Summarize computes totals and rates. Averages are zero rather than NaN
// when there is nothing to divide by.
func Summarize(sessions []domain.Session) Summary {
	sum := Summary{Sessions: len(sessions)}
	if sum.Sessions == 0 {
		return sum
	}

	profits := make(stats.Float64Data, 0, len(sessions))
	hours := make(stats.Float64Data, 0, len(sessions))
	for _, s := range sessions {
		profits = append(profits, s.Profit)
		hours = append(hours, s.Hours)
	}

	// stats only fails on empty input, which the early return rules out.
	var err error
	if sum.TotalProfit, err = stats.Sum(profits); err != nil {
		return Summary{Sessions: sum.Sessions}
	}
	if sum.TotalHours, err = stats.Sum(hours); err != nil {
		return Summary{Sessions: sum.Sessions}
	}
	if sum.AvgProfitPerSession, err = stats.Mean(profits); err != nil {
		return Summary{Sessions: sum.Sessions}
	}
	if sum.TotalHours > 0 {
		sum.HourlyRate = sum.TotalProfit / sum.TotalHours
	}
	return sum
}
