package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrNegativeHours = errors.New("hours must not be negative")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
	ErrNonFinite     = errors.New("must be a finite number")
)

// Session is one recorded instance of play. Profit is stored alongside
// BuyIn and CashOut and is only ever written by NewSession and Apply.
type Session struct {
	ID        string
	Date      string
	Type      string
	Location  string
	Stakes    string
	Notes     string
	Hours     float64
	BuyIn     float64
	CashOut   float64
	Profit    float64
	CreatedAt time.Time
}

// SessionInput holds the user-editable fields of a session.
type SessionInput struct {
	Date     string
	Type     string
	Location string
	Stakes   string
	Notes    string
	Hours    float64
	BuyIn    float64
	CashOut  float64
}

// Validate checks the input before it becomes a session. An empty date is
// allowed; callers fill it with today's day id.
func (in SessionInput) Validate() error {
	var errs []error
	for _, num := range []struct {
		name string
		v    float64
	}{
		{"hours", in.Hours},
		{"buy-in", in.BuyIn},
		{"cash-out", in.CashOut},
	} {
		if math.IsNaN(num.v) || math.IsInf(num.v, 0) {
			errs = append(errs, fmt.Errorf("%s %w", num.name, ErrNonFinite))
		}
	}
	if in.Hours < 0 {
		errs = append(errs, ErrNegativeHours)
	}
	if strings.TrimSpace(in.Date) != "" {
		if _, ok := ParseLocalDayID(in.Date); !ok {
			errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidDate, in.Date))
		}
	}
	return errors.Join(errs...)
}

// ComputeProfit is the single definition of a session's result.
func ComputeProfit(buyIn, cashOut float64) float64 {
	return cashOut - buyIn
}

// NewSession assembles a session from an externally supplied id and
// creation time.
func NewSession(id string, createdAt time.Time, in SessionInput) *Session {
	s := &Session{ID: id, CreatedAt: createdAt}
	s.Apply(in)
	return s
}

// Apply replaces the editable fields and recomputes Profit.
func (s *Session) Apply(in SessionInput) {
	s.Date = strings.TrimSpace(in.Date)
	s.Type = strings.TrimSpace(in.Type)
	s.Location = strings.TrimSpace(in.Location)
	s.Stakes = strings.TrimSpace(in.Stakes)
	s.Notes = strings.TrimSpace(in.Notes)
	s.Hours = in.Hours
	s.BuyIn = in.BuyIn
	s.CashOut = in.CashOut
	s.Profit = ComputeProfit(in.BuyIn, in.CashOut)
}

// Input returns the editable fields of s.
func (s *Session) Input() SessionInput {
	return SessionInput{
		Date:     s.Date,
		Type:     s.Type,
		Location: s.Location,
		Stakes:   s.Stakes,
		Notes:    s.Notes,
		Hours:    s.Hours,
		BuyIn:    s.BuyIn,
		CashOut:  s.CashOut,
	}
}
