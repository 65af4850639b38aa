package pricing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/boddenberg/desking-go/internal/pricing"
)

func TestPolicy_Compute_Percent(t *testing.T) {
	p := pricing.NewPolicy(pricing.DefaultRules())

	tax, err := p.Compute("NC", d("25799"))
	require.NoError(t, err)
	assert.Equal(t, "773.97", tax.StringFixed(2))
}

func TestPolicy_Compute_Flat(t *testing.T) {
	p := pricing.NewPolicy(pricing.DefaultRules())

	// flat rule ignores the taxable amount
	tax, err := p.Compute("sc", d("99999"))
	require.NoError(t, err)
	assert.Equal(t, "500.00", tax.StringFixed(2))
}

func TestPolicy_Compute_Unknown(t *testing.T) {
	p := pricing.NewPolicy(pricing.DefaultRules())

	tax, err := p.Compute("TX", d("25000"))
	assert.True(t, tax.IsZero())

	var unknown *domain.ErrUnknownJurisdiction
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "TX", unknown.Code)
}

func TestPolicy_CaseInsensitive(t *testing.T) {
	p := pricing.NewPolicy(map[string]pricing.Rule{
		"NC": {Kind: pricing.RulePercent, Rate: d("0.03")},
	})

	tax, err := p.Compute(" nc ", d("10000"))
	require.NoError(t, err)
	assert.Equal(t, "300.00", tax.StringFixed(2))
}

func TestPolicy_PercentRate(t *testing.T) {
	p := pricing.NewPolicy(pricing.DefaultRules())

	assert.Equal(t, "0.03", p.PercentRate("nc").String())
	assert.True(t, p.PercentRate("sc").IsZero(), "flat rules have no percent rate")
	assert.True(t, p.PercentRate("tx").IsZero())
}

func TestTaxableAmount_FlooredAtZero(t *testing.T) {
	// trade allowance over the selling price
	got := pricing.TaxableAmount(d("10000"), decimal.Zero, d("15000"), d("299"))
	assert.True(t, got.IsZero())
}
