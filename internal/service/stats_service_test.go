package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pokerlog/internal/app"
	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_ReportReflectsLatestWrites(t *testing.T) {
	f := newFixture(t)
	sessions := NewSessionService(f.repo, f.ids)
	stats := NewStatsService(f.repo, f.observer)
	ctx := context.Background()
	asOf := testNow

	r, err := stats.Report(ctx, app.StatsRequest{AsOf: &asOf})
	require.NoError(t, err)
	assert.Equal(t, 2024, r.Year)
	assert.False(t, r.BestMonth.Found)

	_, err = sessions.Add(ctx, domain.SessionInput{Date: "2024-05-04", Hours: 2, BuyIn: 100, CashOut: 180})
	require.NoError(t, err)

	r, err = stats.Report(ctx, app.StatsRequest{AsOf: &asOf})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Summary.Sessions)
	assert.InDelta(t, 40, r.Summary.HourlyRate, 1e-9)
	require.True(t, r.BestMonth.Found)
	assert.Equal(t, time.May, r.BestMonth.Bucket.Month)
	require.True(t, r.BestWeekday.Found)
	assert.Equal(t, time.Saturday, r.BestWeekday.Bucket.Weekday)

	ev := f.observer.last()
	assert.Equal(t, "stats-report", ev.Name)
	assert.Equal(t, 1, ev.Fields["sessions"])
}

func TestStatsService_ReportExcludesFutureAndOtherYears(t *testing.T) {
	f := newFixture(t)
	sessions := NewSessionService(f.repo, f.ids)
	stats := NewStatsService(f.repo)
	ctx := context.Background()

	for _, d := range []string{"2023-12-31", "2024-06-15", "2024-06-16"} {
		_, err := sessions.Add(ctx, domain.SessionInput{Date: d, Hours: 1, CashOut: 10})
		require.NoError(t, err)
	}

	asOf := testNow
	r, err := stats.Report(ctx, app.StatsRequest{Year: 2024, AsOf: &asOf})
	require.NoError(t, err)
	require.Len(t, r.Sessions, 1)
	assert.Equal(t, "2024-06-15", r.Sessions[0].Date)

	r, err = stats.Report(ctx, app.StatsRequest{Year: 2023, AsOf: &asOf})
	require.NoError(t, err)
	require.Len(t, r.Sessions, 1)
	assert.Equal(t, "2023-12-31", r.Through.ID())
}

func TestStatsService_Years(t *testing.T) {
	f := newFixture(t)
	sessions := NewSessionService(f.repo, f.ids)
	stats := NewStatsService(f.repo)
	ctx := context.Background()

	_, err := sessions.Add(ctx, domain.SessionInput{Date: "2019-04-04", Hours: 1})
	require.NoError(t, err)

	years, err := stats.Years(ctx, testNow)
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2023, 2019}, years)
}

func TestStatsService_UnreadableStorageReportsEmpty(t *testing.T) {
	stats := NewStatsService(brokenRepo{})
	asOf := testNow

	r, err := stats.Report(context.Background(), app.StatsRequest{AsOf: &asOf})
	require.NoError(t, err)
	assert.Empty(t, r.Sessions)
	assert.Len(t, r.Months, 12)
	assert.Equal(t, 0.0, r.Summary.HourlyRate)
}
