package compose

import (
	"strings"

	"github.com/boddenberg/desking-go/internal/domain"
)

// quoteSheetFields builds the customer-facing quote sheet values. Pricing
// breakdown rows are written only when nonzero so the printed sheet shows
// just the charges that apply; the payment grid itself travels separately
// in the desk result.
func (c *Composer) quoteSheetFields(deal *domain.DealRecord, res *domain.DeskResult) domain.FieldMap {
	f := domain.FieldMap{}
	f.SetText("date", c.today())
	f.SetText("dealer", deal.Dealer)
	f.SetText("salesperson", deal.Salesperson)
	f.SetText("manager", deal.Manager)

	f.SetText("buyer", deal.Customer)
	f.SetText("address", deal.Address)
	f.SetText("city_state_zip", deal.City+", "+deal.State+" "+deal.Zip)
	f.SetText("phone", deal.Phone)
	f.SetText("email", deal.Email)

	f.SetText("year", deal.Year)
	f.SetText("make", deal.Make)
	f.SetText("model", strings.TrimSpace(deal.Model+" "+deal.Trim))
	f.SetText("stock_no", deal.StockNumber)
	f.SetText("vin", deal.VIN)
	f.SetText("miles", deal.Odometer)

	for i, prefix := range []string{"trade_", "trade2_"} {
		if !deal.HasTrade(i) {
			continue
		}
		t := deal.Trade(i)
		f.SetText(prefix+"year", t.Year)
		f.SetText(prefix+"make", t.Make)
		f.SetText(prefix+"model", t.Model)
		f.SetText(prefix+"vin", t.VIN)
		f.SetText(prefix+"miles", t.Miles)
	}

	savings := deal.Rebate.Add(deal.Discount)
	if !deal.MarketValue.IsZero() {
		f.SetMoneyAlways("market_value", deal.MarketValue)
		f.SetMoneyAlways("sales_price", deal.MarketValue.Sub(savings))
	}
	f.SetMoney("savings", savings)
	f.SetMoney("trade_value", deal.TradeValue())
	f.SetMoney("trade_payoff", deal.TradePayoff())
	f.SetMoney("doc_fee", deal.DocFee)
	f.SetMoney("sales_tax", res.Pricing.SalesTax)
	f.SetMoney("non_tax_fees", deal.NonTaxFees)
	f.SetMoney("balance", res.Pricing.Balance)
	return f
}
