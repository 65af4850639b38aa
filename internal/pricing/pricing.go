package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/boddenberg/desking-go/internal/domain"
)

// TaxableAmount is the portion of the sale subject to sales tax: selling
// price net of discount and trade allowance, plus the doc fee. Floored at
// zero so an upside-down trade never produces a negative tax base.
func TaxableAmount(marketValue, discount, tradeValue, docFee decimal.Decimal) decimal.Decimal {
	taxable := marketValue.Sub(discount).Sub(tradeValue).Add(docFee)
	if taxable.Sign() < 0 {
		return decimal.Zero
	}
	return taxable
}

// Balance is the amount financed before any cash down: selling price less
// discount, rebate and trade allowance, plus the trade payoff carried over
// and all taxes and fees.
func Balance(marketValue, discount, rebate, tradeValue, tradePayoff, salesTax, docFee, nonTaxFees decimal.Decimal) decimal.Decimal {
	return marketValue.
		Sub(discount).
		Sub(rebate).
		Sub(tradeValue).
		Add(tradePayoff).
		Add(salesTax).
		Add(docFee).
		Add(nonTaxFees)
}

// GrossProfit is front-end gross: selling price less discount and vehicle
// cost, plus trade equity the store keeps (ACV over allowance). Negative
// when the trade is over-allowed past the front gross.
func GrossProfit(marketValue, discount, vehicleCost, tradeACV, tradeValue decimal.Decimal) decimal.Decimal {
	return marketValue.Sub(discount).Sub(vehicleCost).Add(tradeACV.Sub(tradeValue))
}

// Engine derives the deal-level pricing figures from a deal record.
type Engine struct {
	taxes *Policy
}

func NewEngine(taxes *Policy) *Engine {
	return &Engine{taxes: taxes}
}

// Price computes taxable amount, sales tax, balance and gross profit. An
// unknown jurisdiction does not fail the quote: tax is zero and
// JurisdictionKnown is false so the caller can attach a warning.
func (e *Engine) Price(deal *domain.DealRecord) domain.Pricing {
	taxable := TaxableAmount(deal.MarketValue, deal.Discount, deal.TradeValue(), deal.DocFee)

	tax, err := e.taxes.Compute(deal.State, taxable)
	known := true
	if err != nil {
		var unknown *domain.ErrUnknownJurisdiction
		if errors.As(err, &unknown) {
			known = false
		}
	}

	return domain.Pricing{
		TaxableAmount:     taxable,
		SalesTax:          tax,
		Balance:           Balance(deal.MarketValue, deal.Discount, deal.Rebate, deal.TradeValue(), deal.TradePayoff(), tax, deal.DocFee, deal.NonTaxFees),
		GrossProfit:       GrossProfit(deal.MarketValue, deal.Discount, deal.VehicleCost, deal.TradeACV(), deal.TradeValue()),
		JurisdictionKnown: known,
	}
}

// MonthlyTaxRate exposes the percent rate for the deal's state, used by
// lease payments which tax the monthly charge instead of the sale.
func (e *Engine) MonthlyTaxRate(deal *domain.DealRecord) decimal.Decimal {
	return e.taxes.PercentRate(deal.State)
}
