package domain

import "time"

// IdentityProvider supplies ids and creation timestamps for new sessions.
type IdentityProvider interface {
	NewID() string
	Now() time.Time
}
