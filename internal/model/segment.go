package model

import (
	"fmt"
	"time"
)

// PeriodSegment is a half-open [Start, End) slice of an agreement's
// timeline within which exactly one legal rule applies. Segments produced
// by one segmentation call are contiguous, non-overlapping and ordered, and
// their union equals the requested window exactly.
type PeriodSegment struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Rule  LegalRule `json:"-"`
}

// Year returns the calendar year whose TÜFE value governs this segment.
func (s PeriodSegment) Year() int { return s.Start.Year() }

// String renders the interval for breakdowns and logs.
func (s PeriodSegment) String() string {
	return fmt.Sprintf("[%s, %s)", s.Start.Format(DateLayout), s.End.Format(DateLayout))
}
