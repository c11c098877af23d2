package analytics

import "math"

// Best is the outcome of a best-bucket selection. Found is false when the
// grouping holds no sessions at all; Bucket is then the zero value and
// carries no meaning.
type Best[B any] struct {
	Bucket B
	Found  bool
}

// pickBest scans every bucket in order, empty ones included, and keeps the
// first one with strictly greater profit. The result is only Found when at
// least one bucket holds a session.
func pickBest[B any](buckets []B, totals func(B) Totals) Best[B] {
	var best Best[B]
	leader := math.Inf(-1)
	played := false
	for _, b := range buckets {
		t := totals(b)
		played = played || t.Sessions > 0
		if t.Profit > leader {
			best.Bucket = b
			leader = t.Profit
		}
	}
	if !played {
		return Best[B]{}
	}
	best.Found = true
	return best
}

// BestMonth returns the most profitable month; ties go to the earlier month.
func BestMonth(months []MonthBucket) Best[MonthBucket] {
	return pickBest(months, func(b MonthBucket) Totals { return b.Totals })
}

// BestWeekday returns the most profitable weekday; ties go to the earlier
// weekday counting from Sunday.
func BestWeekday(days []WeekdayBucket) Best[WeekdayBucket] {
	return pickBest(days, func(b WeekdayBucket) Totals { return b.Totals })
}

// BestDay returns the most profitable calendar day; ties go to the earlier day.
func BestDay(days []DayBucket) Best[DayBucket] {
	return pickBest(days, func(b DayBucket) Totals { return b.Totals })
}
