package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/pokerlog/internal/analytics"
)

const statsBarWidth = 16

// FormatStats renders the full year-to-date report: headline figures,
// best buckets, then the month and weekday breakdowns.
func FormatStats(r *analytics.Report) string {
	var b strings.Builder
	b.WriteString(FormatOverview(r))
	b.WriteString("\n")
	b.WriteString(Header("By month") + "\n")
	b.WriteString(FormatMonths(r))
	b.WriteString("\n")
	b.WriteString(Header("By day of week") + "\n")
	b.WriteString(FormatWeekdays(r))
	return RenderBox(fmt.Sprintf("Year to date · %d", r.Year), b.String())
}

// FormatOverview renders the headline figures and the best month, day
// and weekday.
func FormatOverview(r *analytics.Report) string {
	s := r.Summary
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold("Total profit "), ColoredMoney(s.TotalProfit))
	b.WriteString(Dim(fmt.Sprintf("               Jan 1 %d → %s", r.Year, r.Through.ID())) + "\n")
	fmt.Fprintf(&b, "%s  %d\n", Bold("Sessions     "), s.Sessions)
	fmt.Fprintf(&b, "%s  %s\n", Bold("Avg / session"), ColoredMoney(s.AvgProfitPerSession))
	fmt.Fprintf(&b, "%s  %s\n", Bold("Hourly       "), ProfitStyle(s.HourlyRate).Render(Money(s.HourlyRate)+"/hr"))
	b.WriteString("\n")

	month, monthMeta := NoValue, "No sessions yet"
	if r.BestMonth.Found {
		m := r.BestMonth.Bucket
		month = ProfitStyle(m.Profit).Render(fmt.Sprintf("%s %d", MonthName(m.Month), r.Year))
		monthMeta = bucketMeta(m.Totals)
	}
	day, dayMeta := NoValue, "No sessions yet"
	if r.BestDay.Found {
		d := r.BestDay.Bucket
		day = ProfitStyle(d.Profit).Render(d.Key)
		dayMeta = bucketMeta(d.Totals)
	}
	weekday, weekdayMeta := NoValue, "No sessions yet"
	if r.BestWeekday.Found {
		w := r.BestWeekday.Bucket
		weekday = ProfitStyle(w.Profit).Render(WeekdayName(w.Weekday))
		weekdayMeta = bucketMeta(w.Totals)
	}

	b.WriteString(RenderTable(
		[]string{"BEST", "", ""},
		[][]string{
			{"Month", month, Dim(monthMeta)},
			{"Date", day, Dim(dayMeta)},
			{"Day of week", weekday, Dim(weekdayMeta)},
		},
	))
	return b.String()
}

func bucketMeta(t analytics.Totals) string {
	return fmt.Sprintf("%s • %d sess • %sh", Money(t.Profit), t.Sessions, Hours(t.Hours))
}

// FormatMonths renders all twelve months, empty ones included.
func FormatMonths(r *analytics.Report) string {
	profits := make([]float64, len(r.Months))
	for i, m := range r.Months {
		profits[i] = m.Profit
	}
	scale := maxAbsProfit(profits)

	rows := make([][]string, 0, len(r.Months))
	for _, m := range r.Months {
		rows = append(rows, []string{
			fmt.Sprintf("%s %d", MonthName(m.Month), r.Year),
			ColoredMoney(m.Profit),
			strconv.Itoa(m.Sessions),
			Hours(m.Hours),
			RenderProfitBar(m.Profit, scale, statsBarWidth),
		})
	}
	return RenderAlignedTable(
		[]string{"MONTH", "PROFIT", "SESSIONS", "HOURS", ""},
		[]Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft},
		rows,
	)
}

// FormatWeekdays renders Sunday through Saturday.
func FormatWeekdays(r *analytics.Report) string {
	profits := make([]float64, len(r.Weekdays))
	for i, d := range r.Weekdays {
		profits[i] = d.Profit
	}
	scale := maxAbsProfit(profits)

	rows := make([][]string, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		rows = append(rows, []string{
			WeekdayName(d.Weekday),
			ColoredMoney(d.Profit),
			strconv.Itoa(d.Sessions),
			Hours(d.Hours),
			RenderProfitBar(d.Profit, scale, statsBarWidth),
		})
	}
	return RenderAlignedTable(
		[]string{"DAY", "PROFIT", "SESSIONS", "HOURS", ""},
		[]Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft},
		rows,
	)
}

// FormatDays renders only the calendar days that had sessions, oldest first.
func FormatDays(r *analytics.Report) string {
	if len(r.Days) == 0 {
		return Dim("No sessions yet.") + "\n"
	}
	rows := make([][]string, 0, len(r.Days))
	for _, d := range r.Days {
		rows = append(rows, []string{
			d.Key,
			WeekdayName(d.Day.Weekday()),
			ColoredMoney(d.Profit),
			strconv.Itoa(d.Sessions),
			Hours(d.Hours),
		})
	}
	return RenderAlignedTable(
		[]string{"DATE", "DAY", "PROFIT", "SESSIONS", "HOURS"},
		[]Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight},
		rows,
	)
}

// FormatYears lists selectable report years, marking the current one.
func FormatYears(years []int, current int) string {
	var b strings.Builder
	for _, y := range years {
		if y == current {
			b.WriteString(StyleGreen.Render(fmt.Sprintf("● %d", y)) + Dim("  current") + "\n")
			continue
		}
		fmt.Fprintf(&b, "  %d\n", y)
	}
	return b.String()
}
