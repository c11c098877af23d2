package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/pokerlog/internal/db"
	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/alexanderramin/pokerlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLiteSessionRepo {
	t.Helper()
	return NewSQLiteSessionRepo(testutil.NewTestDB(t))
}

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := time.Date(2024, time.January, 5, 22, 15, 0, 123_000_000, time.UTC)
	sess := testutil.NewTestSession("2024-01-05",
		testutil.WithMoney(100, 150),
		testutil.WithHours(3.5),
		testutil.WithGame("Tournament", "Bellagio", "$300"),
		testutil.WithNotes("final table"),
		testutil.WithCreatedAt(created),
	)
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, *sess, *fetched)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListKeepsInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ids := []string{"c", "a", "b"}
	dates := []string{"2024-03-01", "2024-01-01", "2024-02-01"}
	for i, id := range ids {
		require.NoError(t, repo.Create(ctx, testutil.NewTestSession(dates[i], testutil.WithID(id))))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, id := range ids {
		assert.Equal(t, id, list[i].ID)
	}
}

func TestSessionRepo_ListEmpty(t *testing.T) {
	list, err := newTestRepo(t).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSessionRepo_CreateDuplicateID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("2024-01-01", testutil.WithID("dup"))))
	assert.Error(t, repo.Create(ctx, testutil.NewTestSession("2024-01-02", testutil.WithID("dup"))))
}

func TestSessionRepo_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sess := testutil.NewTestSession("2024-01-05", testutil.WithMoney(100, 150))
	require.NoError(t, repo.Create(ctx, sess))

	in := sess.Input()
	in.CashOut = 90
	sess.Apply(in)
	require.NoError(t, repo.Update(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.InDelta(t, -10, fetched.Profit, 1e-9)
	assert.InDelta(t, 90, fetched.CashOut, 1e-9)
}

func TestSessionRepo_UpdateMissing(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.Update(context.Background(), testutil.NewTestSession("2024-01-05"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sess := testutil.NewTestSession("2024-01-05")
	require.NoError(t, repo.Create(ctx, sess))
	require.NoError(t, repo.Delete(ctx, sess.ID))

	_, err := repo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, sess.ID), ErrNotFound)
}

func TestSessionRepo_ReplaceAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("2023-01-01", testutil.WithID("old"))))

	replacement := []domain.Session{
		*testutil.NewTestSession("2024-02-01", testutil.WithID("x")),
		*testutil.NewTestSession("2024-01-01", testutil.WithID("y")),
	}
	require.NoError(t, repo.ReplaceAll(ctx, replacement))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "x", list[0].ID)
	assert.Equal(t, "y", list[1].ID)

	// New rows appended after a replace land at the end.
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("2022-01-01", testutil.WithID("z"))))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "z", list[2].ID)

	require.NoError(t, repo.ReplaceAll(ctx, nil))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSessionRepo_ReplaceAllInsideFailedTxKeepsOriginal(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteSessionRepo(database)
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("2024-01-01", testutil.WithID("keep"))))

	uow := &testutil.FailOnNthInsertUoW{DB: database, FailOn: 2, Err: errors.New("disk full")}
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteSessionRepo(tx).ReplaceAll(ctx, []domain.Session{
			*testutil.NewTestSession("2024-02-01"),
			*testutil.NewTestSession("2024-03-01"),
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "keep", list[0].ID)
}

func TestSessionRepo_CorruptRowFailsList(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := database.ExecContext(ctx, `INSERT INTO sessions (id, date, hours) VALUES ('bad', '2024-01-01', 'lots')`)
	require.NoError(t, err)

	_, err = NewSQLiteSessionRepo(database).List(ctx)
	assert.Error(t, err)
}
