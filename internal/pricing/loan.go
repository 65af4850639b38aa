package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/boddenberg/desking-go/internal/domain"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// MonthlyPayment amortizes principal less down over termMonths at the
// given annual rate (a fraction, 0.14 for 14% APR). A zero principal means
// nothing is financed and the payment is zero; a zero rate degrades to a
// straight division. The result is rounded to cents.
func MonthlyPayment(principal, down, annualRate decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if termMonths <= 0 {
		return decimal.Zero, &domain.ErrValidation{Field: "term_months", Message: "term must be positive"}
	}
	if annualRate.Sign() < 0 {
		return decimal.Zero, &domain.ErrValidation{Field: "rate", Message: "rate must not be negative"}
	}
	if principal.IsZero() {
		return decimal.Zero, nil
	}

	financed := principal.Sub(down)
	if financed.Sign() < 0 {
		return decimal.Zero, &domain.ErrValidation{Field: "down_payment", Message: "down payment exceeds principal"}
	}
	if financed.IsZero() {
		return decimal.Zero, nil
	}

	term := decimal.NewFromInt(int64(termMonths))
	if annualRate.IsZero() {
		return financed.Div(term).Round(2), nil
	}

	monthlyRate := annualRate.Div(twelve)
	// financed * r / (1 - (1+r)^-n)
	growth := one.Add(monthlyRate).Pow(term)
	denominator := one.Sub(one.Div(growth))
	return financed.Mul(monthlyRate).Div(denominator).Round(2), nil
}
