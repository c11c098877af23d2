package testutil

import (
	"fmt"
	"time"
)

// SequentialIdentity hands out ids "<Prefix>-1", "<Prefix>-2", ... and
// always reports At as the current time.
type SequentialIdentity struct {
	Prefix string
	At     time.Time
	n      int
}

func (s *SequentialIdentity) NewID() string {
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

func (s *SequentialIdentity) Now() time.Time { return s.At }
