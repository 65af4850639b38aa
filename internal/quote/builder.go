package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/boddenberg/desking-go/internal/pricing"
)

var hundred = decimal.NewFromInt(100)

// Builder assembles the term-by-down-payment matrix for one deal. Row and
// column order follow the request exactly; the grid is what the desk
// manager asked for, not a normalized view.
type Builder struct {
	engine *pricing.Engine
}

func NewBuilder(engine *pricing.Engine) *Builder {
	return &Builder{engine: engine}
}

// Build computes one payment per (row, down payment) cell. Finance rows
// amortize the priced balance; lease rows run the lease charges off the
// deal's cap cost with the row's money factor and residual.
func (b *Builder) Build(deal *domain.DealRecord, dealType domain.DealType, p domain.Pricing, rows []domain.QuoteRow, downPayments []decimal.Decimal) (domain.QuoteMatrix, error) {
	if len(rows) == 0 {
		return domain.QuoteMatrix{}, &domain.ErrValidation{Field: "rows", Message: "at least one quote row is required"}
	}
	if len(downPayments) == 0 {
		return domain.QuoteMatrix{}, &domain.ErrValidation{Field: "down_payments", Message: "at least one down payment is required"}
	}
	for i, down := range downPayments {
		if down.Sign() < 0 {
			return domain.QuoteMatrix{}, &domain.ErrValidation{
				Field:   fmt.Sprintf("down_payments[%d]", i),
				Message: "down payment must not be negative",
			}
		}
	}

	matrix := domain.QuoteMatrix{
		DownPayments: downPayments,
		Rows:         make([]domain.MatrixRow, 0, len(rows)),
	}

	// No market value means nothing has been priced yet. The grid still
	// renders, every cell at zero, without touching the calculators: the
	// fee-only balance of a blank worksheet must not produce payments.
	if deal.MarketValue.IsZero() {
		for _, row := range rows {
			out := domain.MatrixRow{
				TermMonths: row.TermMonths,
				Rate:       row.Rate,
				Payments:   make([]decimal.Decimal, len(downPayments)),
			}
			for i := range out.Payments {
				out.Payments[i] = decimal.Zero
			}
			matrix.Rows = append(matrix.Rows, out)
		}
		return matrix, nil
	}

	taxRate := b.engine.MonthlyTaxRate(deal)

	for _, row := range rows {
		out := domain.MatrixRow{
			TermMonths: row.TermMonths,
			Rate:       row.Rate,
			Payments:   make([]decimal.Decimal, 0, len(downPayments)),
		}
		for _, down := range downPayments {
			var (
				payment decimal.Decimal
				err     error
			)
			switch dealType {
			case domain.DealLease:
				var lq pricing.LeaseQuote
				lq, err = pricing.LeasePayment(pricing.LeaseInputs{
					MarketValue:      deal.MarketValue,
					ResidualFraction: row.Residual,
					MoneyFactor:      row.Rate,
					TermMonths:       row.TermMonths,
					Discount:         deal.Discount,
					DocFee:           deal.DocFee,
					NonTaxFees:       deal.NonTaxFees,
					DownPayment:      down,
					Rebate:           deal.Rebate,
					TradeValue:       deal.TradeValue(),
					TradePayoff:      deal.TradePayoff(),
					MonthlyTaxRate:   taxRate,
				})
				payment = lq.Payment
				out.Residual = lq.ResidualValue
			default:
				payment, err = pricing.MonthlyPayment(p.Balance, down, row.Rate, row.TermMonths)
			}
			if err != nil {
				return domain.QuoteMatrix{}, err
			}
			out.Payments = append(out.Payments, payment)
		}
		matrix.Rows = append(matrix.Rows, out)
	}
	return matrix, nil
}

// LTV computes the loan-to-value percentage per down payment: the amount
// financed after cash down over book value, times one hundred. A missing
// book value yields zeros rather than a division error.
func LTV(balance decimal.Decimal, downPayments []decimal.Decimal, bookValue decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(downPayments))
	if bookValue.IsZero() {
		for i := range out {
			out[i] = decimal.Zero
		}
		return out
	}
	for i, down := range downPayments {
		out[i] = balance.Sub(down).Div(bookValue).Mul(hundred).Round(2)
	}
	return out
}
