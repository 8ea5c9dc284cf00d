package validate

import (
	"fmt"
	"time"

	"github.com/ustaoglu/kiracap/internal/model"
)

// Accepted bounds for a yearly TÜFE percentage. Values outside this range
// are rejected before storage, never partially stored.
const (
	MinTufeValue = 0
	MaxTufeValue = 1000
)

// ValidateTufeValue checks a yearly TÜFE percentage against the accepted
// range.
func ValidateTufeValue(value float64) error {
	if value < MinTufeValue || value > MaxTufeValue {
		return fmt.Errorf("%w: TÜFE value %.2f outside [%d, %d]",
			model.ErrValidation, value, MinTufeValue, MaxTufeValue)
	}
	return nil
}

// ValidateRange checks that a date window is ordered. Equal endpoints are a
// valid (zero-length) window.
func ValidateRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: start %s after end %s",
			model.ErrInvalidRange, start.Format(model.DateLayout), end.Format(model.DateLayout))
	}
	return nil
}
