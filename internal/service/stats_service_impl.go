package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pokerlog/internal/analytics"
	"github.com/alexanderramin/pokerlog/internal/app"
	"github.com/alexanderramin/pokerlog/internal/repository"
)

type statsService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

func NewStatsService(sessions repository.SessionRepo, observers ...UseCaseObserver) StatsService {
	return &statsService{
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Report reloads the log on every call so the figures always reflect the
// latest writes.
func (s *statsService) Report(ctx context.Context, req app.StatsRequest) (report *analytics.Report, err error) {
	asOf := time.Now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}
	year := req.Year
	if year == 0 {
		year = asOf.Year()
	}
	fields := map[string]any{"year": year}
	defer observe(ctx, s.observer, "stats-report", time.Now(), fields, &err)

	r := analytics.BuildReport(loadSessions(ctx, s.sessions), year, asOf)
	fields["sessions"] = len(r.Sessions)
	return &r, nil
}

func (s *statsService) Years(ctx context.Context, now time.Time) ([]int, error) {
	return analytics.AvailableYears(loadSessions(ctx, s.sessions), now), nil
}
