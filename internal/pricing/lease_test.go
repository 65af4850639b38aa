package pricing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/boddenberg/desking-go/internal/pricing"
)

func TestLeasePayment(t *testing.T) {
	quote, err := pricing.LeasePayment(pricing.LeaseInputs{
		MarketValue:      d("30000"),
		ResidualFraction: d("0.6"),
		MoneyFactor:      d("0.00125"),
		TermMonths:       36,
		DownPayment:      d("3000"),
		MonthlyTaxRate:   d("0.03"),
	})
	require.NoError(t, err)

	assert.Equal(t, "18000.00", quote.ResidualValue.StringFixed(2))
	assert.Equal(t, "250.00", quote.Depreciation.StringFixed(2))
	assert.Equal(t, "56.25", quote.Rent.StringFixed(2))
	assert.Equal(t, "9.19", quote.MonthlyTax.StringFixed(2))
	assert.Equal(t, "315.44", quote.Payment.StringFixed(2))
}

func TestLeasePayment_WithFees(t *testing.T) {
	quote, err := pricing.LeasePayment(pricing.LeaseInputs{
		MarketValue:      d("30000"),
		ResidualFraction: d("0.55"),
		MoneyFactor:      d("0.00275"),
		TermMonths:       36,
		DownPayment:      d("2000"),
		DocFee:           d("799"),
		NonTaxFees:       d("106.75"),
		MonthlyTaxRate:   d("0.03"),
	})
	require.NoError(t, err)

	assert.Equal(t, "16500.00", quote.ResidualValue.StringFixed(2))
	assert.Equal(t, "344.60", quote.Depreciation.StringFixed(2))
	assert.Equal(t, "124.87", quote.Rent.StringFixed(2))
	assert.Equal(t, "14.08", quote.MonthlyTax.StringFixed(2))
	assert.Equal(t, "483.55", quote.Payment.StringFixed(2))
}

func TestLeasePayment_ZeroMarketValue(t *testing.T) {
	quote, err := pricing.LeasePayment(pricing.LeaseInputs{
		ResidualFraction: d("0.5"),
		MoneyFactor:      d("0.001"),
		TermMonths:       36,
	})
	require.NoError(t, err)
	assert.True(t, quote.Payment.IsZero())
}

func TestLeasePayment_TradeEquityReducesCap(t *testing.T) {
	base := pricing.LeaseInputs{
		MarketValue:      d("30000"),
		ResidualFraction: d("0.6"),
		MoneyFactor:      d("0.00125"),
		TermMonths:       36,
	}
	noTrade, err := pricing.LeasePayment(base)
	require.NoError(t, err)

	base.TradeValue = d("5000")
	base.TradePayoff = d("2000")
	withTrade, err := pricing.LeasePayment(base)
	require.NoError(t, err)
	assert.True(t, withTrade.Payment.LessThan(noTrade.Payment))
}

func TestLeasePayment_Validation(t *testing.T) {
	var verr *domain.ErrValidation

	_, err := pricing.LeasePayment(pricing.LeaseInputs{TermMonths: 0})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "term_months", verr.Field)

	_, err = pricing.LeasePayment(pricing.LeaseInputs{TermMonths: 36, ResidualFraction: d("1.2")})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "residual", verr.Field)

	// a money factor entered as an APR percentage
	_, err = pricing.LeasePayment(pricing.LeaseInputs{TermMonths: 36, ResidualFraction: d("0.5"), MoneyFactor: d("0.14")})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "money_factor", verr.Field)
}

func TestResidualValue(t *testing.T) {
	assert.Equal(t, "13750.00", pricing.ResidualValue(d("25000"), d("0.55")).StringFixed(2))
}
