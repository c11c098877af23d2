package repository

import (
	"time"
)

// timeToMillis converts a timestamp to Unix milliseconds for storage.
// The zero time is stored as 0.
func timeToMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// millisToTime is the inverse of timeToMillis.
func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
