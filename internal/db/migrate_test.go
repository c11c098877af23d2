package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesSessionsTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='sessions'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "sessions", name)

	for _, idx := range []string{"idx_sessions_date", "idx_sessions_seq"} {
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_AddsNotesColumnOnce(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	rows, err := db.Query(`PRAGMA table_info(sessions)`)
	require.NoError(t, err)
	defer rows.Close()

	var notes int
	for rows.Next() {
		var cid, notNull, pk int
		var colName, colType string
		var dflt sql.NullString
		require.NoError(t, rows.Scan(&cid, &colName, &colType, &notNull, &dflt, &pk))
		if colName == "notes" {
			notes++
		}
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, 1, notes)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/pokerlog.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping())
}
