package rules

import (
	"sort"
	"time"

	"github.com/ustaoglu/kiracap/internal/model"
	"github.com/ustaoglu/kiracap/internal/validate"
)

// Segmenter splits an evaluation window into contiguous segments at every
// rule boundary and calendar-year boundary inside it. Year boundaries
// matter because TÜFE values are annual.
type Segmenter struct {
	registry *Registry
}

// NewSegmenter creates a segmenter backed by the given catalog.
func NewSegmenter(registry *Registry) *Segmenter {
	return &Segmenter{registry: registry}
}

// Segment returns the ordered segments covering [windowStart, windowEnd)
// exactly, each governed by the single rule active at its start. A
// zero-length window yields no segments; an inverted window is an
// ErrInvalidRange.
func (s *Segmenter) Segment(windowStart, windowEnd time.Time) ([]model.PeriodSegment, error) {
	if err := validate.ValidateRange(windowStart, windowEnd); err != nil {
		return nil, err
	}
	if windowStart.Equal(windowEnd) {
		return []model.PeriodSegment{}, nil
	}

	bounds := []time.Time{windowStart, windowEnd}
	for _, rule := range s.registry.All() {
		if strictlyInside(rule.EffectiveStart(), windowStart, windowEnd) {
			bounds = append(bounds, rule.EffectiveStart())
		}
		if end, ok := rule.EffectiveEnd(); ok && strictlyInside(end, windowStart, windowEnd) {
			bounds = append(bounds, end)
		}
	}
	for year := windowStart.Year() + 1; year <= windowEnd.Year(); year++ {
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		if strictlyInside(jan1, windowStart, windowEnd) {
			bounds = append(bounds, jan1)
		}
	}

	sort.Slice(bounds, func(i, j int) bool { return bounds[i].Before(bounds[j]) })
	bounds = dedupe(bounds)

	segments := make([]model.PeriodSegment, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		rule, err := s.registry.Resolve(bounds[i])
		if err != nil {
			return nil, err
		}
		segments = append(segments, model.PeriodSegment{
			Start: bounds[i],
			End:   bounds[i+1],
			Rule:  rule,
		})
	}
	return segments, nil
}

func strictlyInside(d, start, end time.Time) bool {
	return d.After(start) && d.Before(end)
}

func dedupe(sorted []time.Time) []time.Time {
	out := sorted[:0]
	for _, d := range sorted {
		if len(out) == 0 || !d.Equal(out[len(out)-1]) {
			out = append(out, d)
		}
	}
	return out
}
