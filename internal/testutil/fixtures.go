package testutil

import (
	"time"

	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/google/uuid"
)

// SessionOption adjusts the input or identity of a test session.
type SessionOption func(*sessionFixture)

type sessionFixture struct {
	id        string
	createdAt time.Time
	input     domain.SessionInput
}

func WithID(id string) SessionOption {
	return func(f *sessionFixture) {
		f.id = id
	}
}

func WithCreatedAt(t time.Time) SessionOption {
	return func(f *sessionFixture) {
		f.createdAt = t
	}
}

// WithMoney sets buy-in and cash-out; profit follows from them.
func WithMoney(buyIn, cashOut float64) SessionOption {
	return func(f *sessionFixture) {
		f.input.BuyIn = buyIn
		f.input.CashOut = cashOut
	}
}

func WithHours(h float64) SessionOption {
	return func(f *sessionFixture) {
		f.input.Hours = h
	}
}

func WithGame(gameType, location, stakes string) SessionOption {
	return func(f *sessionFixture) {
		f.input.Type = gameType
		f.input.Location = location
		f.input.Stakes = stakes
	}
}

func WithNotes(n string) SessionOption {
	return func(f *sessionFixture) {
		f.input.Notes = n
	}
}

// NewTestSession builds a session on the given date string, which is kept
// verbatim so tests can store malformed dates.
func NewTestSession(date string, opts ...SessionOption) *domain.Session {
	f := &sessionFixture{
		id:        uuid.New().String(),
		createdAt: time.Now().UTC().Truncate(time.Millisecond),
		input: domain.SessionInput{
			Type:  "Cash",
			Hours: 1,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	s := domain.NewSession(f.id, f.createdAt, f.input)
	s.Date = date
	return s
}
