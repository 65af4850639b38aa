package compose

import (
	"github.com/shopspring/decimal"

	"github.com/boddenberg/desking-go/internal/domain"
)

var titleFee = decimal.NewFromInt(11)

// billOfSaleFields fills the store's buyer's order form. Money lines print
// even when zero; the form's totals column is expected to be complete.
func (c *Composer) billOfSaleFields(deal *domain.DealRecord, res *domain.DeskResult) domain.FieldMap {
	f := domain.FieldMap{}
	f.SetText("bos_date", c.today())
	f.SetText("bos_salesperson", deal.Salesperson)
	f.SetText("bos_sls_mgr", deal.Manager)
	f.SetText("bos_buyer", deal.Customer)
	f.SetText("box_address", deal.Address)
	f.SetText("bos_city", deal.City)
	f.SetText("bos_state", deal.State)
	f.SetText("bos_county", deal.County)
	f.SetText("bos_zip", deal.Zip)
	f.SetText("bos_res_phone", deal.Phone)
	f.SetText("bos_email", deal.Email)

	f.SetBool("bos_cb_new", deal.IsNew())
	f.SetBool("bos_cb_used", !deal.IsNew())
	f.SetText("bos_year", deal.Year)
	f.SetText("bos_make", deal.Make)
	f.SetText("bos_model", deal.Model)
	f.SetText("bos_bodystyle", deal.BodyStyle)
	f.SetText("bos_vin1", deal.VIN)
	f.SetText("bos_stock1", deal.StockNumber)
	f.SetText("bos_miles1", deal.Odometer)

	for i, suffix := range []string{"2", "3"} {
		if !deal.HasTrade(i) {
			continue
		}
		t := deal.Trade(i)
		f.SetText("bos_year"+suffix, t.Year)
		f.SetText("bos_make"+suffix, t.Make)
		f.SetText("bos_model"+suffix, t.Model)
		f.SetText("bos_miles"+suffix, t.Miles)
		f.SetText("bos_vin"+suffix, t.VIN)
	}

	tradeValue := deal.TradeValue()
	tradePayoff := deal.TradePayoff()
	total := deal.MarketValue.Sub(deal.Discount).Sub(tradeValue)
	subtotal := total.
		Add(deal.DocFee).
		Add(res.Pricing.SalesTax).
		Add(deal.NonTaxFees).
		Add(tradePayoff)
	down := firstDown(res)

	f.SetMoneyAlways("bos_vehicle_price", deal.MarketValue.Sub(deal.Discount))
	f.SetMoneyAlways("bos_trade_value", tradeValue)
	f.SetMoneyAlways("bos_total", total)
	f.SetMoneyAlways("bos_docfee", deal.DocFee)
	f.SetMoneyAlways("bos_taxes", res.Pricing.SalesTax)
	f.SetMoneyAlways("bos_tagfees", deal.NonTaxFees.Sub(titleFee))
	f.SetMoneyAlways("bos_titlefee", titleFee)
	f.SetMoneyAlways("bos_payoff", tradePayoff)
	f.SetMoneyAlways("bos_subtotal", subtotal)
	f.SetMoneyAlways("bos_downpayment", down)
	f.SetMoneyAlways("bos_rebate", deal.Rebate)
	f.SetMoneyAlways("bos_balance", subtotal.Sub(deal.Rebate).Sub(down))
	return f
}

// firstDown is the cash down the buyer's order carries: the first column
// of the desked matrix, zero when no matrix was requested.
func firstDown(res *domain.DeskResult) decimal.Decimal {
	if res == nil || len(res.Matrix.DownPayments) == 0 {
		return decimal.Zero
	}
	return res.Matrix.DownPayments[0]
}
