package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/pokerlog/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAvailableYears(t *testing.T) {
	now := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.Local)
	all := sessions(
		testutil.NewTestSession("2021-03-03"),
		testutil.NewTestSession("2024-03-03"),
		testutil.NewTestSession("2024-07-03"),
		testutil.NewTestSession("x"),
		testutil.NewTestSession("abcd-01-01"),
	)

	assert.Equal(t, []int{2026, 2025, 2024, 2021}, AvailableYears(all, now))
	assert.Equal(t, []int{2026, 2025}, AvailableYears(nil, now))
}

func TestYearToDate_Window(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	w := YearToDate(2024, asOf)

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.June, 15, 23, 59, 59, 0, time.UTC), w.End)
}
