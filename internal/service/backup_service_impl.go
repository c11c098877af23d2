package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/pokerlog/internal/app"
	"github.com/alexanderramin/pokerlog/internal/backup"
	"github.com/alexanderramin/pokerlog/internal/db"
	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/alexanderramin/pokerlog/internal/repository"
)

type backupService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	ids      domain.IdentityProvider
	observer UseCaseObserver
}

func NewBackupService(
	sessions repository.SessionRepo,
	uow db.UnitOfWork,
	ids domain.IdentityProvider,
	observers ...UseCaseObserver,
) BackupService {
	return &backupService{
		sessions: sessions,
		uow:      uow,
		ids:      ids,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *backupService) Export(ctx context.Context, w io.Writer, f backup.Format, now time.Time) (res *app.ExportResult, err error) {
	fields := map[string]any{"format": string(f)}
	defer observe(ctx, s.observer, "export-backup", time.Now(), fields, &err)

	// Unlike the read views, export refuses to write a backup of a log it
	// could not read.
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	fields["sessions"] = len(sessions)

	if err = backup.Encode(w, f, backup.FromSessions(sessions), now); err != nil {
		return nil, err
	}
	return &app.ExportResult{Format: f, Sessions: len(sessions)}, nil
}

func (s *backupService) Import(ctx context.Context, r io.Reader, f backup.Format) (res *app.ImportResult, err error) {
	fields := map[string]any{"format": string(f)}
	defer observe(ctx, s.observer, "import-backup", time.Now(), fields, &err)

	records, err := backup.Decode(r, f)
	if err != nil {
		return nil, err
	}
	if errs := backup.Validate(records); len(errs) > 0 {
		return nil, backup.ValidationError(errs)
	}
	sessions := backup.ToSessions(records, s.ids)

	var replaced int
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		n, err := txSessions.Count(ctx)
		if err != nil {
			return fmt.Errorf("counting sessions: %w", err)
		}
		replaced = n
		if err := txSessions.ReplaceAll(ctx, sessions); err != nil {
			return fmt.Errorf("replacing sessions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["imported"] = len(sessions)
	fields["replaced"] = replaced
	return &app.ImportResult{Imported: len(sessions), Replaced: replaced}, nil
}

func (s *backupService) Clear(ctx context.Context) (removed int, err error) {
	defer observe(ctx, s.observer, "clear-sessions", time.Now(), map[string]any{}, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		n, err := txSessions.Count(ctx)
		if err != nil {
			return fmt.Errorf("counting sessions: %w", err)
		}
		removed = n
		return txSessions.ReplaceAll(ctx, nil)
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
