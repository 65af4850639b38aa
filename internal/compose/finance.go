package compose

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/boddenberg/desking-go/internal/domain"
)

// financeFields fills the truth-in-lending disclosure. Only the figures
// the desk knows are written; the lender's final numbers land on this form
// at contracting.
func (c *Composer) financeFields(deal *domain.DealRecord, res *domain.DeskResult) domain.FieldMap {
	dealer := c.dealer(deal)

	f := domain.FieldMap{}
	f.SetText("LAWBUYER", deal.Customer)
	f.SetText("LAWBUYADDRESS", deal.Address+", "+deal.City+", "+deal.State+" "+deal.Zip)
	f.SetText("LAWBUYCELL", deal.Phone)
	f.SetText("LAWBUYEMAIL", deal.Email)
	f.SetText("SellerCreditor Name and Address", dealer.Block())

	condition := "USED"
	if deal.IsNew() {
		condition = "NEW"
	}
	f.SetText("LAWNEWUSED", condition)
	f.SetText("LAWYEAR", deal.Year)
	f.SetText("LAWMAKEMODEL", strings.TrimSpace(deal.Make+" "+deal.Model))
	f.SetText("LAWVIN", deal.VIN)

	f.SetText("LAWRATE", firstRatePercent(res))
	f.SetText("When Payments Are Due", "Monthly")
	f.SetMoneyAlways("LAWSALESTAX", res.Pricing.SalesTax)
	f.SetMoneyAlways("LAWCASHDOWNPAY", firstDown(res))

	if deal.HasTrade(0) {
		t := deal.Trade(0)
		f.SetText("LAWTRADEYEAR", t.Year)
		f.SetText("LAWTRADEMAKE", t.Make)
		f.SetText("LAWTRADEMODEL", t.Model)
	}
	return f
}

// firstRatePercent renders the first quoted row's APR as a percent string.
func firstRatePercent(res *domain.DeskResult) string {
	if res == nil || len(res.Matrix.Rows) == 0 {
		return ""
	}
	return res.Matrix.Rows[0].Rate.Mul(decimal.NewFromInt(100)).StringFixed(2)
}

// weOweFields fills the we-owe form: open items the store promises the
// buyer at delivery.
func (c *Composer) weOweFields(deal *domain.DealRecord) domain.FieldMap {
	condition := "Used"
	switch deal.Condition {
	case domain.ConditionNew:
		condition = "New"
	case domain.ConditionCPO:
		condition = "CPO"
	}

	f := domain.FieldMap{}
	f.SetText("WONAME", deal.Customer)
	f.SetText("WOSTKNO", deal.StockNumber)
	f.SetText("WONEWUSED", condition)
	f.SetText("WOADDRESS", deal.Address)
	f.SetText("WOCITY", deal.City)
	f.SetText("WOSTATE", deal.State)
	f.SetText("WOZIP", deal.Zip)
	f.SetText("WOYEAR", deal.Year)
	f.SetText("WOMAKE", deal.Make)
	f.SetText("WOMODEL", deal.Model)
	f.SetText("WOVIN", deal.VIN)
	f.SetText("WOPHONE", deal.Phone)
	f.SetText("WOEMAIL", deal.Email)
	f.SetText("WOSALESPERSON", deal.Salesperson)
	f.SetText("WODELDATE", c.today())
	return f
}

// buyersGuideFields fills the FTC buyers guide window sticker form.
func (c *Composer) buyersGuideFields(deal *domain.DealRecord) domain.FieldMap {
	dealer := c.dealer(deal)

	f := domain.FieldMap{}
	f.SetText("guideyear", deal.Year)
	f.SetText("guidemake", deal.Make)
	f.SetText("guidemodel", deal.Model)
	f.SetText("guidevin", deal.VIN)
	f.SetText("guidestock", deal.StockNumber)
	f.SetBool("guidecb1", true)
	f.SetText("guidedealer", dealer.Name)
	f.SetText("guideaddress", dealer.OneLine())
	f.SetText("guidedate", c.today())
	return f
}

// vinVerifyFields fills the in-store VIN and mileage verification sheet.
func (c *Composer) vinVerifyFields(deal *domain.DealRecord) domain.FieldMap {
	f := domain.FieldMap{}
	f.SetText("vinverifystock", deal.StockNumber)
	f.SetText("vinverifyvin", deal.VIN)
	f.SetText("vinverifymiles", deal.Odometer)
	if deal.HasTrade(0) {
		t := deal.Trade(0)
		f.SetText("vinverifytradevin", t.VIN)
		f.SetText("vinverifytrademiles", t.Miles)
	}
	return f
}

// payoffFields fills the trade payoff authorization the buyer signs so the
// store can retire the trade's loan.
func (c *Composer) payoffFields(deal *domain.DealRecord) domain.FieldMap {
	t := deal.Trade(0)

	f := domain.FieldMap{}
	f.SetText("CPDATE", c.today())
	f.SetText("CPBUYER", deal.Customer)
	f.SetText("CPSALESPERSON", deal.Salesperson)
	f.SetText("CPMANAGER", deal.Manager)
	f.SetText("CPINS", deal.Insurance.Company)
	f.SetText("CPPOLICY", deal.Insurance.PolicyNumber)
	f.SetText("CPYEAR", t.Year)
	f.SetText("CPMAKE", t.Make)
	f.SetText("CPMODEL", t.Model)
	f.SetText("CPPAYOFFAMT", "  $"+t.Payoff.StringFixed(2))
	return f
}
