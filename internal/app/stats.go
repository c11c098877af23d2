package app

import "time"

// StatsRequest selects the year to report on. AsOf defaults to the
// current local time; it is only overridden by tests and --as-of.
type StatsRequest struct {
	Year int
	AsOf *time.Time
}

// NewStatsRequest reports on the current year as of now.
func NewStatsRequest(now time.Time) StatsRequest {
	return StatsRequest{Year: now.Year()}
}
