package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/pokerlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMonth_TieGoesToEarlierMonth(t *testing.T) {
	months := ByMonth(sessions(
		testutil.NewTestSession("2024-05-03", testutil.WithMoney(100, 175)),
		testutil.NewTestSession("2024-03-10", testutil.WithMoney(100, 175)),
	))

	best := BestMonth(months)
	require.True(t, best.Found)
	assert.Equal(t, time.March, best.Bucket.Month)
}

func TestBestWeekday_TieGoesToEarlierWeekday(t *testing.T) {
	days := ByWeekday(sessions(
		testutil.NewTestSession("2024-01-06", testutil.WithMoney(0, 30)), // Saturday
		testutil.NewTestSession("2024-01-01", testutil.WithMoney(0, 30)), // Monday
	))

	best := BestWeekday(days)
	require.True(t, best.Found)
	assert.Equal(t, time.Monday, best.Bucket.Weekday)
}

func TestBestDay_TieGoesToEarlierDay(t *testing.T) {
	days := ByDay(sessions(
		testutil.NewTestSession("2024-08-01", testutil.WithMoney(0, 30)),
		testutil.NewTestSession("2024-02-01", testutil.WithMoney(0, 30)),
	))

	best := BestDay(days)
	require.True(t, best.Found)
	assert.Equal(t, "2024-02-01", best.Bucket.Key)
}

func TestBest_NoDataSentinel(t *testing.T) {
	assert.False(t, BestMonth(ByMonth(nil)).Found)
	assert.False(t, BestWeekday(ByWeekday(nil)).Found)
	assert.False(t, BestDay(ByDay(nil)).Found)
	assert.False(t, BestDay(nil).Found)
}

func TestBest_EmptyMonthTiesWithZeroProfitMonth(t *testing.T) {
	months := ByMonth(sessions(testutil.NewTestSession("2024-04-04", testutil.WithMoney(80, 80))))

	// January is empty at zero profit and comes first, so April cannot
	// beat it with an equal zero.
	best := BestMonth(months)
	require.True(t, best.Found)
	assert.Equal(t, time.January, best.Bucket.Month)
	assert.Equal(t, 0, best.Bucket.Sessions)
}

func TestBest_AllLosingPicksFirstEmptyBucket(t *testing.T) {
	months := ByMonth(sessions(
		testutil.NewTestSession("2024-02-01", testutil.WithMoney(100, 0)),
		testutil.NewTestSession("2024-03-01", testutil.WithMoney(100, 50)),
	))

	best := BestMonth(months)
	require.True(t, best.Found)
	assert.Equal(t, time.January, best.Bucket.Month)
	assert.Equal(t, 0.0, best.Bucket.Profit)
	assert.Equal(t, 0, best.Bucket.Sessions)

	// Saturday 2024-01-06 loses; the first empty weekday, Sunday, wins.
	weekdays := ByWeekday(sessions(testutil.NewTestSession("2024-01-06", testutil.WithMoney(100, 40))))
	bestWeekday := BestWeekday(weekdays)
	require.True(t, bestWeekday.Found)
	assert.Equal(t, time.Sunday, bestWeekday.Bucket.Weekday)
}

func TestBest_AllLosingDaysPicksSmallestLoss(t *testing.T) {
	// Day groupings only hold observed days, so there is no empty bucket.
	days := ByDay(sessions(
		testutil.NewTestSession("2024-02-01", testutil.WithMoney(100, 0)),
		testutil.NewTestSession("2024-07-01", testutil.WithMoney(100, 60)),
	))

	best := BestDay(days)
	require.True(t, best.Found)
	assert.Equal(t, "2024-07-01", best.Bucket.Key)
	assert.InDelta(t, -40, best.Bucket.Profit, 1e-9)
}

func TestBest_PositiveMonthBeatsEmptyOnes(t *testing.T) {
	months := ByMonth(sessions(testutil.NewTestSession("2024-09-09", testutil.WithMoney(10, 11))))

	best := BestMonth(months)
	require.True(t, best.Found)
	assert.Equal(t, time.September, best.Bucket.Month)
	assert.Equal(t, 1, best.Bucket.Sessions)
}

func TestBest_LaterStrictlyGreaterDisplacesLeader(t *testing.T) {
	days := ByDay(sessions(
		testutil.NewTestSession("2024-01-01", testutil.WithMoney(0, 10)),
		testutil.NewTestSession("2024-01-02", testutil.WithMoney(0, 10.01)),
		testutil.NewTestSession("2024-01-03", testutil.WithMoney(0, 10.01)),
	))

	best := BestDay(days)
	require.True(t, best.Found)
	assert.Equal(t, "2024-01-02", best.Bucket.Key)
}
