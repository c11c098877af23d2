package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/pokerlog/internal/analytics"
	"github.com/alexanderramin/pokerlog/internal/app"
	"github.com/alexanderramin/pokerlog/internal/backup"
	"github.com/alexanderramin/pokerlog/internal/domain"
)

type SessionService interface {
	Add(ctx context.Context, in domain.SessionInput) (*domain.Session, error)
	Edit(ctx context.Context, id string, in domain.SessionInput) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	// List returns every stored session in insertion order. A storage
	// failure is logged and reported as an empty log.
	List(ctx context.Context) ([]domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type StatsService interface {
	Report(ctx context.Context, req app.StatsRequest) (*analytics.Report, error)
	Years(ctx context.Context, now time.Time) ([]int, error)
}

type BackupService interface {
	Export(ctx context.Context, w io.Writer, f backup.Format, now time.Time) (*app.ExportResult, error)
	// Import replaces the whole session log with the backup read from r.
	// Nothing is changed unless the backup decodes and validates.
	Import(ctx context.Context, r io.Reader, f backup.Format) (*app.ImportResult, error)
	// Clear deletes every session and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
