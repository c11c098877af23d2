package backup

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks decoded records before they replace the session log.
// Returns a slice of all validation errors found.
func Validate(records []SessionRecord) []error {
	var errs []error
	ids := make(map[string]bool, len(records))

	for i, r := range records {
		prefix := fmt.Sprintf("sessions[%d]", i)

		if r.Hours < 0 {
			errs = append(errs, fmt.Errorf("%s.hours must not be negative (got %v)", prefix, r.Hours))
		}
		for _, f := range []struct {
			name string
			v    float64
		}{{"hours", r.Hours}, {"buyin", r.BuyIn}, {"cashout", r.CashOut}} {
			if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
				errs = append(errs, fmt.Errorf("%s.%s must be a finite number", prefix, f.name))
			}
		}

		id := strings.TrimSpace(r.ID)
		if id == "" {
			continue
		}
		if ids[id] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, id))
		}
		ids[id] = true
	}

	return errs
}

// ValidationError joins individual problems into one ErrInvalidBackup.
func ValidationError(errs []error) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = "  - " + e.Error()
	}
	return fmt.Errorf("%w: validation failed (%d errors):\n%s", ErrInvalidBackup, len(errs), strings.Join(msgs, "\n"))
}
