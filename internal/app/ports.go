package app

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/pokerlog/internal/analytics"
	"github.com/alexanderramin/pokerlog/internal/backup"
	"github.com/alexanderramin/pokerlog/internal/domain"
)

type RecordSessionUseCase interface {
	Add(ctx context.Context, in domain.SessionInput) (*domain.Session, error)
}

type StatsUseCase interface {
	Report(ctx context.Context, req StatsRequest) (*analytics.Report, error)
	Years(ctx context.Context, now time.Time) ([]int, error)
}

type ExportBackupUseCase interface {
	Export(ctx context.Context, w io.Writer, f backup.Format, now time.Time) (*ExportResult, error)
}

type ImportBackupUseCase interface {
	Import(ctx context.Context, r io.Reader, f backup.Format) (*ImportResult, error)
}
