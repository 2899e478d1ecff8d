package services

import (
	"forwarding/internal/core/domain/model/pricing"
)

// SpecialItemMatcher resolves whether a described item falls under an active
// SpecialItemRule. A nil result means weight-based pricing applies; it is not
// an error.
//
// Overlapping active rules for the same item are a configuration error that
// the rule-creation command rejects at write time. Should pre-existing
// overlapping rules nevertheless be encountered at read time, the matcher
// applies a fixed tie-break: the most recently created rule wins, with the
// rule ID as a final deterministic discriminator.
type SpecialItemMatcher struct{}

// NewSpecialItemMatcher creates a SpecialItemMatcher.
func NewSpecialItemMatcher() SpecialItemMatcher {
	return SpecialItemMatcher{}
}

// Match returns the active rule covering (category, brand, itemName, model),
// or nil when no rule matches. rules is the full active rule set, passed in
// explicitly by the caller.
func (SpecialItemMatcher) Match(
	rules []*pricing.SpecialItemRule,
	category, brand, itemName, model string,
) *pricing.SpecialItemRule {
	var winner *pricing.SpecialItemRule

	for _, rule := range rules {
		if rule == nil || !rule.IsActive() {
			continue
		}
		if !rule.Matches(category, brand, itemName, model) {
			continue
		}
		if winner == nil || createdAfter(rule, winner) {
			winner = rule
		}
	}

	return winner
}

// createdAfter reports whether a wins the tie-break against b.
func createdAfter(a, b *pricing.SpecialItemRule) bool {
	if !a.CreatedAt().Equal(b.CreatedAt()) {
		return a.CreatedAt().After(b.CreatedAt())
	}
	return a.ID().String() > b.ID().String()
}
