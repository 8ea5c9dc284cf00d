package model

import "time"

// Attribution identifies the index source and rule framework behind every
// computed result. The export collaborator appends it verbatim; the core
// never alters it.
const Attribution = "Index source: TÜİK consumer price index (TÜFE), twelve-month averages, via the official data service. Rule framework: Turkish Code of Obligations rent-increase caps (art. 344 and transitional provisions)."

// IncreaseResult is the outcome of evaluating an agreement's legal
// rent-increase cap over a window.
type IncreaseResult struct {
	Principal           float64          `json:"principal"`
	FinalAmount         float64          `json:"final_amount"`
	RequiresManualEntry bool             `json:"requires_manual_entry"`
	Breakdown           []BreakdownEntry `json:"breakdown"`
	Attribution         string           `json:"attribution"`
	ComputedAt          time.Time        `json:"computed_at"`
}

// BreakdownEntry explains one segment's contribution to the final amount.
// A pending segment carries no numbers at all: Contribution and RatePercent
// stay nil so a missing index value can never read as a computed zero.
type BreakdownEntry struct {
	Segment      PeriodSegment `json:"segment"`
	RuleLabel    string        `json:"rule_label"`
	RatePercent  *float64      `json:"rate_percent,omitempty"`
	Contribution *float64      `json:"contribution,omitempty"`
	Pending      bool          `json:"pending"`
}
