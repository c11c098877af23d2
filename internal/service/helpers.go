package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/alexanderramin/pokerlog/internal/repository"
)

// loadSessions reads the whole log. Unreadable storage degrades to an
// empty log so read-only views keep working.
func loadSessions(ctx context.Context, repo repository.SessionRepo) []domain.Session {
	sessions, err := repo.List(ctx)
	if err != nil {
		slog.WarnContext(ctx, "session_load_failed", "error", err)
		return []domain.Session{}
	}
	return sessions
}

// observe reports a finished use case. Call it deferred with a pointer to
// the named error result.
func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, err *error) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}
