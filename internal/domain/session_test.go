package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSession_ComputesProfit(t *testing.T) {
	created := time.Date(2024, time.January, 5, 20, 0, 0, 0, time.UTC)
	s := NewSession("s-1", created, SessionInput{
		Date:    "2024-01-05",
		Type:    "Cash",
		Stakes:  " 1/2 ",
		Hours:   4.5,
		BuyIn:   200,
		CashOut: 155.5,
	})

	assert.Equal(t, "s-1", s.ID)
	assert.Equal(t, created, s.CreatedAt)
	assert.Equal(t, "1/2", s.Stakes)
	assert.InDelta(t, -44.5, s.Profit, 1e-9)
}

func TestSession_ApplyRecomputesProfit(t *testing.T) {
	s := NewSession("s-1", time.Now(), SessionInput{Date: "2024-01-05", BuyIn: 100, CashOut: 150})
	assert.InDelta(t, 50, s.Profit, 1e-9)

	in := s.Input()
	in.CashOut = 20
	s.Apply(in)

	assert.InDelta(t, -80, s.Profit, 1e-9)
	assert.Equal(t, "s-1", s.ID, "edits keep identity")
}

func TestSessionInput_Validate(t *testing.T) {
	assert.NoError(t, SessionInput{Date: "2024-01-05", Hours: 2}.Validate())
	assert.NoError(t, SessionInput{}.Validate(), "empty date is filled later")

	err := SessionInput{Hours: -1}.Validate()
	assert.ErrorIs(t, err, ErrNegativeHours)

	err = SessionInput{Date: "2024-13-40"}.Validate()
	assert.ErrorIs(t, err, ErrInvalidDate)

	err = SessionInput{Date: "nope", Hours: -2}.Validate()
	assert.ErrorIs(t, err, ErrNegativeHours)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSessionInput_ValidateRejectsNonFinite(t *testing.T) {
	for name, in := range map[string]SessionInput{
		"inf cash-out": {CashOut: math.Inf(1)},
		"-inf buy-in":  {BuyIn: math.Inf(-1)},
		"nan buy-in":   {BuyIn: math.NaN()},
		"nan hours":    {Hours: math.NaN()},
		"inf hours":    {Hours: math.Inf(1)},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, in.Validate(), ErrNonFinite)
		})
	}
}
