package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/boddenberg/desking-go/internal/domain"
)

// moneyFactorCeiling guards against a money factor entered as an APR.
// 0.1 corresponds to a 240% equivalent APR, far past any real program.
var moneyFactorCeiling = decimal.NewFromFloat(0.1)

// LeaseInputs carries everything one lease payment needs. Monetary fields
// default to zero when the deal does not carry them.
type LeaseInputs struct {
	MarketValue      decimal.Decimal
	ResidualFraction decimal.Decimal
	MoneyFactor      decimal.Decimal
	TermMonths       int

	Discount       decimal.Decimal
	DocFee         decimal.Decimal
	NonTaxFees     decimal.Decimal
	AdditionalCaps decimal.Decimal

	DownPayment decimal.Decimal
	Rebate      decimal.Decimal
	TradeValue  decimal.Decimal
	TradePayoff decimal.Decimal

	MonthlyTaxRate decimal.Decimal
}

// LeaseQuote breaks the monthly payment into its charges. Payment is
// rounded to cents; components keep full precision for downstream display.
type LeaseQuote struct {
	ResidualValue decimal.Decimal
	Depreciation  decimal.Decimal
	Rent          decimal.Decimal
	MonthlyTax    decimal.Decimal
	Payment       decimal.Decimal
}

// ResidualValue is the lease-end purchase value: market value times the
// program's residual fraction.
func ResidualValue(marketValue, residualFraction decimal.Decimal) decimal.Decimal {
	return marketValue.Mul(residualFraction)
}

// LeasePayment computes the monthly lease payment: straight-line
// depreciation of the adjusted cap cost down to residual, rent charge via
// the money factor, and tax on the monthly charge. A zero market value
// yields a zero quote.
func LeasePayment(in LeaseInputs) (LeaseQuote, error) {
	if in.TermMonths <= 0 {
		return LeaseQuote{}, &domain.ErrValidation{Field: "term_months", Message: "term must be positive"}
	}
	if in.ResidualFraction.Sign() < 0 || in.ResidualFraction.GreaterThan(one) {
		return LeaseQuote{}, &domain.ErrValidation{Field: "residual", Message: "residual must be a fraction between 0 and 1"}
	}
	if in.MoneyFactor.Sign() < 0 || in.MoneyFactor.GreaterThanOrEqual(moneyFactorCeiling) {
		return LeaseQuote{}, &domain.ErrValidation{Field: "money_factor", Message: "money factor out of range"}
	}
	if in.MarketValue.IsZero() {
		return LeaseQuote{}, nil
	}

	residual := ResidualValue(in.MarketValue, in.ResidualFraction)

	grossCap := in.MarketValue.
		Sub(in.Discount).
		Add(in.DocFee).
		Add(in.NonTaxFees).
		Add(in.AdditionalCaps)
	capReduction := in.DownPayment.
		Add(in.Rebate).
		Add(in.TradeValue.Sub(in.TradePayoff))
	adjustedCap := grossCap.Sub(capReduction)

	term := decimal.NewFromInt(int64(in.TermMonths))
	depreciation := adjustedCap.Sub(residual).Div(term)
	rent := adjustedCap.Add(residual).Mul(in.MoneyFactor)
	tax := depreciation.Add(rent).Mul(in.MonthlyTaxRate)

	return LeaseQuote{
		ResidualValue: residual,
		Depreciation:  depreciation,
		Rent:          rent,
		MonthlyTax:    tax,
		Payment:       depreciation.Add(rent).Add(tax).Round(2),
	}, nil
}
