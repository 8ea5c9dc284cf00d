package calc

import (
	"context"
	"fmt"
	"time"

	"github.com/ustaoglu/kiracap/internal/model"
	"github.com/ustaoglu/kiracap/internal/rules"
)

// IndexSource supplies yearly TÜFE values. ok=false means the value is
// unavailable right now — a reported condition, not an error.
type IndexSource interface {
	Get(ctx context.Context, year int) (model.TufeRecord, bool)
}

// Calculator walks an agreement's segments in order, resolves each
// segment's cap and compounds the running principal across them.
type Calculator struct {
	segmenter *rules.Segmenter
	index     IndexSource
}

// NewCalculator creates a calculator over the given segmenter and index
// source.
func NewCalculator(segmenter *rules.Segmenter, index IndexSource) *Calculator {
	return &Calculator{segmenter: segmenter, index: index}
}

// ComputeForWindow segments [agreementStart, evaluationDate) and computes
// the compounded legal cap for the given principal.
func (c *Calculator) ComputeForWindow(ctx context.Context, principal float64, agreementStart, evaluationDate time.Time) (*model.IncreaseResult, error) {
	segments, err := c.segmenter.Segment(agreementStart, evaluationDate)
	if err != nil {
		return nil, err
	}
	return c.Compute(ctx, principal, segments)
}

// Compute resolves each segment's increase in order. Fixed-cap segments
// contribute rate% of the running principal, applied once per segment (the
// statutory cap is yearly, never prorated by days). CPI segments apply the
// full annual TÜFE value of the segment's starting year. A segment whose
// TÜFE value is unavailable becomes Pending: it contributes nothing, the
// running principal carries forward unchanged, and the result is flagged
// for manual entry — processing never aborts on missing index data.
func (c *Calculator) Compute(ctx context.Context, principal float64, segments []model.PeriodSegment) (*model.IncreaseResult, error) {
	result := &model.IncreaseResult{
		Principal:   principal,
		Attribution: model.Attribution,
		ComputedAt:  time.Now().UTC(),
		Breakdown:   make([]model.BreakdownEntry, 0, len(segments)),
	}

	running := principal
	for _, seg := range segments {
		entry := model.BreakdownEntry{
			Segment:   seg,
			RuleLabel: seg.Rule.DisplayLabel(),
		}

		var ratePercent float64
		switch seg.Rule.Kind() {
		case model.RuleFixedCap:
			rate, ok := seg.Rule.FixedRate()
			if !ok {
				return nil, fmt.Errorf("%w: fixed-cap rule %q has no rate",
					model.ErrRuleConfiguration, seg.Rule.DisplayLabel())
			}
			ratePercent = rate

		case model.RuleCpiBased:
			rec, ok := c.index.Get(ctx, seg.Year())
			if !ok {
				entry.Pending = true
				result.RequiresManualEntry = true
				result.Breakdown = append(result.Breakdown, entry)
				continue
			}
			ratePercent = rec.Value

		default:
			return nil, fmt.Errorf("%w: unknown rule kind %q",
				model.ErrRuleConfiguration, seg.Rule.Kind())
		}

		contribution := running * ratePercent / 100
		entry.RatePercent = f64(ratePercent)
		entry.Contribution = f64(contribution)
		result.Breakdown = append(result.Breakdown, entry)
		running += contribution
	}

	result.FinalAmount = running
	return result, nil
}

func f64(v float64) *float64 { return &v }
