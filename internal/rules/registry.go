package rules

import (
	"fmt"
	"sort"
	"time"

	"github.com/ustaoglu/kiracap/internal/model"
)

// CpiCutover is the date the CPI-linked regime replaced the fixed 25% cap.
var CpiCutover = time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

// catalogEpoch is the earliest date the catalog covers.
var catalogEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Registry holds the ordered statutory rule catalog. The catalog is fixed
// at construction and never mutated; a new catalog means a redeploy.
type Registry struct {
	rules []model.LegalRule
}

// NewRegistry builds a registry from a catalog, ordered by effective start.
// Catalog invariants (no gaps, no overlaps) are checked at resolution time,
// not here.
func NewRegistry(catalog []model.LegalRule) *Registry {
	rules := make([]model.LegalRule, len(catalog))
	copy(rules, catalog)
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].EffectiveStart().Before(rules[j].EffectiveStart())
	})
	return &Registry{rules: rules}
}

// DefaultRegistry returns the deployed catalog: the flat 25% statutory cap
// for every date before the cutover, TÜFE-indexed from the cutover on.
func DefaultRegistry() *Registry {
	return NewRegistry([]model.LegalRule{
		model.NewFixedCapRule(25, catalogEpoch, CpiCutover, "Fixed 25% statutory cap"),
		model.NewCpiBasedRule(CpiCutover, time.Time{}, "CPI-indexed (TÜFE) cap"),
	})
}

// Resolve returns the rule whose validity interval contains date. A gap or
// overlap in the catalog surfaces as ErrRuleConfiguration: that is a
// deployment defect and evaluation must halt.
func (r *Registry) Resolve(date time.Time) (model.LegalRule, error) {
	var match model.LegalRule
	count := 0
	for _, rule := range r.rules {
		if rule.Contains(date) {
			if count == 0 {
				match = rule
			}
			count++
		}
	}

	switch count {
	case 1:
		return match, nil
	case 0:
		return model.LegalRule{}, fmt.Errorf("%w: no rule covers %s",
			model.ErrRuleConfiguration, date.Format(model.DateLayout))
	default:
		return model.LegalRule{}, fmt.Errorf("%w: %d rules overlap at %s",
			model.ErrRuleConfiguration, count, date.Format(model.DateLayout))
	}
}

// All returns the catalog ordered by effective start.
func (r *Registry) All() []model.LegalRule {
	out := make([]model.LegalRule, len(r.rules))
	copy(out, r.rules)
	return out
}
