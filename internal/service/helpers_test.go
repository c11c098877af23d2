package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/alexanderramin/pokerlog/internal/repository"
	"github.com/alexanderramin/pokerlog/internal/testutil"
)

var testNow = time.Date(2024, time.June, 15, 20, 30, 0, 0, time.Local)

type fixture struct {
	db       *sql.DB
	repo     *repository.SQLiteSessionRepo
	ids      *testutil.SequentialIdentity
	observer *recordingObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &fixture{
		db:       database,
		repo:     repository.NewSQLiteSessionRepo(database),
		ids:      &testutil.SequentialIdentity{Prefix: "s", At: testNow},
		observer: &recordingObserver{},
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

// brokenRepo fails every call, standing in for unreadable storage.
type brokenRepo struct{}

var errStorage = errors.New("storage unavailable")

func (brokenRepo) List(context.Context) ([]domain.Session, error) { return nil, errStorage }
func (brokenRepo) GetByID(context.Context, string) (*domain.Session, error) {
	return nil, errStorage
}
func (brokenRepo) Create(context.Context, *domain.Session) error      { return errStorage }
func (brokenRepo) Update(context.Context, *domain.Session) error      { return errStorage }
func (brokenRepo) Delete(context.Context, string) error               { return errStorage }
func (brokenRepo) ReplaceAll(context.Context, []domain.Session) error { return errStorage }
func (brokenRepo) Count(context.Context) (int, error)                 { return 0, errStorage }

var _ repository.SessionRepo = brokenRepo{}
