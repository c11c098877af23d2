package service

import (
	"time"

	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/google/uuid"
)

type uuidIdentity struct {
	clock func() time.Time
}

// NewIdentityProvider returns the production provider: random UUIDs and
// the wall clock truncated to the millisecond precision storage keeps.
func NewIdentityProvider() domain.IdentityProvider {
	return uuidIdentity{clock: time.Now}
}

func (p uuidIdentity) NewID() string { return uuid.New().String() }

func (p uuidIdentity) Now() time.Time { return p.clock().Truncate(time.Millisecond) }
