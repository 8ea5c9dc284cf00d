package model

import "time"

// DateLayout is the format for agreement and rule dates in config files,
// CLI flags and output.
const DateLayout = "2006-01-02"

// RuleKind discriminates the closed set of legal rule variants.
type RuleKind string

const (
	// RuleFixedCap is a flat percentage ceiling (e.g. the 25% statutory cap).
	RuleFixedCap RuleKind = "fixed_cap"
	// RuleCpiBased ties the ceiling to the published annual TÜFE value.
	RuleCpiBased RuleKind = "cpi_based"
)

// LegalRule is one entry of the statutory rent-increase catalog, valid over
// a half-open [start, end) interval. The zero value is not usable: construct
// through NewFixedCapRule or NewCpiBasedRule, so a fixed cap without a rate
// or a CPI rule carrying one cannot exist.
type LegalRule struct {
	kind  RuleKind
	rate  float64 // percent; set only for RuleFixedCap
	start time.Time
	end   time.Time // zero value means open-ended ("current")
	label string
}

// NewFixedCapRule builds a flat-percentage rule. A zero end time makes the
// rule open-ended.
func NewFixedCapRule(ratePercent float64, start, end time.Time, label string) LegalRule {
	return LegalRule{
		kind:  RuleFixedCap,
		rate:  ratePercent,
		start: start,
		end:   end,
		label: label,
	}
}

// NewCpiBasedRule builds a TÜFE-indexed rule. A zero end time makes the
// rule open-ended.
func NewCpiBasedRule(start, end time.Time, label string) LegalRule {
	return LegalRule{
		kind:  RuleCpiBased,
		start: start,
		end:   end,
		label: label,
	}
}

// Kind returns the rule variant.
func (r LegalRule) Kind() RuleKind { return r.kind }

// FixedRate returns the flat percentage and true for fixed-cap rules,
// and 0, false for CPI-indexed rules.
func (r LegalRule) FixedRate() (float64, bool) {
	if r.kind != RuleFixedCap {
		return 0, false
	}
	return r.rate, true
}

// EffectiveStart returns the inclusive start of the rule's validity.
func (r LegalRule) EffectiveStart() time.Time { return r.start }

// EffectiveEnd returns the exclusive end of the rule's validity.
// ok is false for the open-ended rule.
func (r LegalRule) EffectiveEnd() (end time.Time, ok bool) {
	if r.end.IsZero() {
		return time.Time{}, false
	}
	return r.end, true
}

// Contains reports whether d falls inside the rule's validity interval.
func (r LegalRule) Contains(d time.Time) bool {
	if d.Before(r.start) {
		return false
	}
	return r.end.IsZero() || d.Before(r.end)
}

// DisplayLabel returns the human-readable rule label for UI and breakdowns.
func (r LegalRule) DisplayLabel() string { return r.label }
