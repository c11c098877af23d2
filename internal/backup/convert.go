package backup

import (
	"strings"
	"time"

	"github.com/alexanderramin/pokerlog/internal/domain"
)

// ToSessions turns validated records into domain sessions. Missing ids and
// creation times come from ids; profit is always recomputed from the
// buy-in and cash-out. Dates are kept verbatim, even when malformed.
func ToSessions(records []SessionRecord, ids domain.IdentityProvider) []domain.Session {
	out := make([]domain.Session, 0, len(records))
	for _, r := range records {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			id = ids.NewID()
		}
		createdAt := ids.Now()
		if r.CreatedAt > 0 {
			createdAt = time.UnixMilli(r.CreatedAt).UTC()
		}
		s := domain.NewSession(id, createdAt, domain.SessionInput{
			Date:     r.Date,
			Type:     r.Type,
			Location: r.Location,
			Stakes:   r.Stakes,
			Notes:    r.Notes,
			Hours:    r.Hours,
			BuyIn:    r.BuyIn,
			CashOut:  r.CashOut,
		})
		out = append(out, *s)
	}
	return out
}

// FromSessions is the inverse of ToSessions.
func FromSessions(sessions []domain.Session) []SessionRecord {
	out := make([]SessionRecord, len(sessions))
	for i, s := range sessions {
		out[i] = SessionRecord{
			ID:        s.ID,
			Date:      s.Date,
			Type:      s.Type,
			Location:  s.Location,
			Stakes:    s.Stakes,
			Hours:     s.Hours,
			BuyIn:     s.BuyIn,
			CashOut:   s.CashOut,
			Profit:    s.Profit,
			Notes:     s.Notes,
			CreatedAt: s.CreatedAt.UnixMilli(),
		}
	}
	return out
}
