package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT PRIMARY KEY,
		seq        INTEGER NOT NULL DEFAULT 0,
		date       TEXT NOT NULL DEFAULT '',
		type       TEXT NOT NULL DEFAULT '',
		location   TEXT NOT NULL DEFAULT '',
		stakes     TEXT NOT NULL DEFAULT '',
		hours      REAL NOT NULL DEFAULT 0,
		buyin      REAL NOT NULL DEFAULT 0,
		cashout    REAL NOT NULL DEFAULT 0,
		profit     REAL NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_seq ON sessions(seq)`,

	// Notes arrived after the first release.
	`ALTER TABLE sessions ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}
