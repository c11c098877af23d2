package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/pokerlog/internal/db"
	"github.com/alexanderramin/pokerlog/internal/domain"
)

const sessionColumns = `id, date, type, location, stakes, hours, buyin, cashout, profit, notes, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. Pass a *sql.Tx to
// scope it to a transaction.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

var _ SessionRepo = (*SQLiteSessionRepo)(nil)

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY seq, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return s, nil
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM sessions))`
	if _, err := r.db.ExecContext(ctx, query, sessionArgs(s)...); err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE sessions
		SET date = ?, type = ?, location = ?, stakes = ?, hours = ?, buyin = ?, cashout = ?, profit = ?, notes = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Date, s.Type, s.Location, s.Stakes, s.Hours, s.BuyIn, s.CashOut, s.Profit, s.Notes, s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	return requireAffected(res, s.ID)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return requireAffected(res, id)
}

// ReplaceAll deletes every stored session and inserts the given ones in
// order. Callers wanting all-or-nothing semantics run it inside a
// UnitOfWork.
func (r *SQLiteSessionRepo) ReplaceAll(ctx context.Context, sessions []domain.Session) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clearing sessions: %w", err)
	}

	query := `INSERT INTO sessions (` + sessionColumns + `, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i := range sessions {
		args := append(sessionArgs(&sessions[i]), i+1)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting session %s: %w", sessions[i].ID, err)
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}
	return n, nil
}

func sessionArgs(s *domain.Session) []any {
	return []any{
		s.ID,
		s.Date,
		s.Type,
		s.Location,
		s.Stakes,
		s.Hours,
		s.BuyIn,
		s.CashOut,
		s.Profit,
		s.Notes,
		timeToMillis(s.CreatedAt),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanSession reads one row selected with sessionColumns.
func scanSession(row rowScanner) (*domain.Session, error) {
	var s domain.Session
	var createdAt int64
	err := row.Scan(
		&s.ID, &s.Date, &s.Type, &s.Location, &s.Stakes,
		&s.Hours, &s.BuyIn, &s.CashOut, &s.Profit, &s.Notes, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = millisToTime(createdAt)
	return &s, nil
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}
