package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/boddenberg/desking-go/internal/domain"
)

// RuleKind distinguishes percent-of-taxable rules from flat amounts.
type RuleKind string

const (
	RulePercent RuleKind = "percent"
	RuleFlat    RuleKind = "flat"
)

// Rule is one jurisdiction's sales tax treatment. Percent rules apply Rate
// (a fraction, 0.03 for 3%) to the taxable amount; flat rules charge Amount
// regardless of it.
type Rule struct {
	Kind   RuleKind        `json:"kind"`
	Rate   decimal.Decimal `json:"rate,omitempty"`
	Amount decimal.Decimal `json:"amount,omitempty"`
}

// Policy resolves a jurisdiction code to its tax rule. Lookups are
// case-insensitive; codes are normalized once at construction.
type Policy struct {
	rules map[string]Rule
}

// DefaultRules carries the jurisdictions the store sells into today.
func DefaultRules() map[string]Rule {
	return map[string]Rule{
		"nc": {Kind: RulePercent, Rate: decimal.NewFromFloat(0.03)},
		"sc": {Kind: RuleFlat, Amount: decimal.NewFromInt(500)},
	}
}

func NewPolicy(rules map[string]Rule) *Policy {
	normalized := make(map[string]Rule, len(rules))
	for code, rule := range rules {
		normalized[strings.ToLower(strings.TrimSpace(code))] = rule
	}
	return &Policy{rules: normalized}
}

// Compute returns the sales tax owed on taxable in the given jurisdiction.
// Unknown jurisdictions yield zero tax alongside ErrUnknownJurisdiction so
// callers can degrade to an untaxed quote with a warning.
func (p *Policy) Compute(jurisdiction string, taxable decimal.Decimal) (decimal.Decimal, error) {
	rule, ok := p.rules[strings.ToLower(strings.TrimSpace(jurisdiction))]
	if !ok {
		return decimal.Zero, &domain.ErrUnknownJurisdiction{Code: jurisdiction}
	}
	switch rule.Kind {
	case RuleFlat:
		return rule.Amount, nil
	default:
		return taxable.Mul(rule.Rate).Round(2), nil
	}
}

// PercentRate returns the jurisdiction's percent rate as a fraction, or
// zero for flat-amount and unknown jurisdictions. Lease payments tax the
// monthly charge at this rate rather than taxing the sale up front.
func (p *Policy) PercentRate(jurisdiction string) decimal.Decimal {
	rule, ok := p.rules[strings.ToLower(strings.TrimSpace(jurisdiction))]
	if !ok || rule.Kind != RulePercent {
		return decimal.Zero
	}
	return rule.Rate
}
