package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/pokerlog/internal/db"
)

// FailOnNthInsertUoW is a test UoW that injects an error on the Nth INSERT
// executed inside its transaction, counting from 1. Other statements pass
// through, which lets tests break a bulk replace halfway and check that
// nothing was committed.
type FailOnNthInsertUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthInsertUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthInsert{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnNthInsert struct {
	db.DBTX
	inserts atomic.Int32
	failOn  int32
	err     error
}

func (f *failOnNthInsert) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.HasPrefix(strings.TrimSpace(query), "INSERT") {
		if f.inserts.Add(1) == f.failOn {
			return nil, f.err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
