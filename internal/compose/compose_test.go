package compose_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boddenberg/desking-go/internal/compose"
	"github.com/boddenberg/desking-go/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newComposer() *compose.Composer {
	return compose.NewComposer(compose.NewDirectory(compose.DefaultDealers()))
}

func testDeal() *domain.DealRecord {
	return &domain.DealRecord{
		Customer:    "John Smith",
		Address:     "12 Oak St",
		City:        "Winston-Salem",
		State:       "NC",
		Zip:         "27101",
		County:      "Forsyth",
		Phone:       "336-555-0101",
		Email:       "john@example.com",
		Salesperson: "Dale Cooper",
		Manager:     "Harry Truman",
		Dealer:      "MODERN TOYOTA WINSTON",
		Year:        "2024",
		Make:        "Toyota",
		Model:       "Camry",
		Trim:        "SE",
		BodyStyle:   "4DSD",
		FuelType:    "GAS",
		VIN:         "4T1G11AK5RU123456",
		StockNumber: "T12345",
		Odometer:    "15",
		Condition:   domain.ConditionNew,
		MarketValue: d("26500"),
		Discount:    d("1000"),
		DocFee:      d("299"),
		NonTaxFees:  d("106.75"),
	}
}

func testResult() *domain.DeskResult {
	return &domain.DeskResult{
		QuoteID: "q-1",
		Pricing: domain.Pricing{
			TaxableAmount:     d("25799"),
			SalesTax:          d("773.97"),
			Balance:           d("26679.72"),
			JurisdictionKnown: true,
		},
		Matrix: domain.QuoteMatrix{
			DownPayments: []decimal.Decimal{d("1000"), d("2000")},
			Rows: []domain.MatrixRow{
				{TermMonths: 60, Rate: d("0.14"), Payments: []decimal.Decimal{d("613.29"), d("574.25")}},
			},
		},
	}
}

func TestBillOfSaleFields(t *testing.T) {
	c := newComposer()
	f, err := c.Compose(domain.DocBillOfSale, testDeal(), testResult())
	require.NoError(t, err)

	assert.Equal(t, "John Smith", f.Text("bos_buyer"))
	assert.Equal(t, "12 Oak St", f.Text("box_address"))
	assert.True(t, f.Bool("bos_cb_new"))
	assert.False(t, f.Bool("bos_cb_used"))
	assert.Equal(t, "T12345", f.Text("bos_stock1"))

	// money column: 26500 - 1000 discount
	assert.Equal(t, "25500.00", f.Text("bos_vehicle_price"))
	assert.Equal(t, "0.00", f.Text("bos_trade_value"))
	assert.Equal(t, "773.97", f.Text("bos_taxes"))
	assert.Equal(t, "11.00", f.Text("bos_titlefee"))
	assert.Equal(t, "95.75", f.Text("bos_tagfees"))
	assert.Equal(t, "1000.00", f.Text("bos_downpayment"))
	// subtotal 26679.72 less the first down
	assert.Equal(t, "26679.72", f.Text("bos_subtotal"))
	assert.Equal(t, "25679.72", f.Text("bos_balance"))

	// no trade on the deal: trade rows stay blank
	_, ok := f["bos_year2"]
	assert.False(t, ok)
}

func TestBillOfSaleFields_WithTrade(t *testing.T) {
	c := newComposer()
	deal := testDeal()
	deal.Trades = []domain.TradeIn{{
		Year: "2019", Make: "Honda", Model: "Civic", VIN: "2HGFC2F59KH500001",
		Miles: "61000", Value: d("8000"), Payoff: d("3000"),
	}}

	f, err := c.Compose(domain.DocBillOfSale, deal, testResult())
	require.NoError(t, err)

	assert.Equal(t, "2019", f.Text("bos_year2"))
	assert.Equal(t, "2HGFC2F59KH500001", f.Text("bos_vin2"))
	assert.Equal(t, "8000.00", f.Text("bos_trade_value"))
	assert.Equal(t, "3000.00", f.Text("bos_payoff"))
}

func TestTitleFields(t *testing.T) {
	c := newComposer()
	deal := testDeal()
	deal.DriversLicense = "NC1234567"
	deal.Lienholder = domain.Lienholder{Name: "Truist Bank", Address: "214 N Tryon St", City: "Charlotte", State: "NC", Zip: "28202"}
	deal.Insurance = domain.Insurance{Company: "State Farm", PolicyNumber: "SF-100200"}

	f, err := c.Compose(domain.DocTitleApplication, deal, testResult())
	require.NoError(t, err)

	assert.Equal(t, "4T1G11AK5RU123456", f.Text("VEHICLE IDENTIFICATION NUMBER"))
	assert.Equal(t, "John Smith", f.Text("Full Legal Name of Owner 1 First Middle Last Suffix or Company Name"))
	assert.Equal(t, "NC1234567", f.Text("Owner 1 ID"))
	assert.Equal(t, "Forsyth", f.Text("Tax County"))
	assert.Equal(t, "Truist Bank", f.Text("Lienholder 1 name"))
	assert.Equal(t, "State Farm", f.Text("Insurance Company authorized in NC"))
	assert.True(t, f.Bool("No_2"))
	assert.True(t, f.Bool("mvr1_cb_New"))
	assert.False(t, f.Bool("mvr1_cb_Used"))

	// seller block resolves through the dealer roster
	assert.Equal(t, "MODERN TOYOTA WINSTON\n3178 PETERS CREEK PKWY\nWINSTON-SALEM NC 27127",
		f.Text("From Whom Purchased Name and Address"))
}

func TestOdometerFields_RolesPerDirection(t *testing.T) {
	c := newComposer()
	deal := testDeal()
	deal.Trades = []domain.TradeIn{{Year: "2019", Make: "Honda", Model: "Civic", VIN: "2HGFC2F59KH500001", Miles: "61000"}}

	sold, err := c.Compose(domain.DocOdometer, deal, testResult())
	require.NoError(t, err)
	assert.Equal(t, "MODERN TOYOTA WINSTON", sold.Text("mvr180SellName"))
	assert.Equal(t, "John Smith", sold.Text("mvr180BuyersName"))
	assert.Equal(t, "15", sold.Text("mvr180Odometer"))

	parts, err := c.Package(deal, testResult())
	require.NoError(t, err)
	var trade domain.FieldMap
	for _, p := range parts {
		if p.TemplateID == "trade_odometer_disclosure" {
			trade = p.Fields
		}
	}
	require.NotNil(t, trade, "trade disclosure missing from packet")
	assert.Equal(t, "John Smith", trade.Text("SELLERNAMEMVR180"))
	assert.Equal(t, "61000", trade.Text("ODOMETERMVR180"))
}

func TestQuoteSheetFields(t *testing.T) {
	c := newComposer()
	f, err := c.Compose(domain.DocQuoteSheet, testDeal(), testResult())
	require.NoError(t, err)

	assert.Equal(t, "John Smith", f.Text("buyer"))
	assert.Equal(t, "Winston-Salem, NC 27101", f.Text("city_state_zip"))
	assert.Equal(t, "Camry SE", f.Text("model"))
	assert.Equal(t, "26500.00", f.Text("market_value"))
	// savings column is discount plus rebate
	assert.Equal(t, "1000.00", f.Text("savings"))
	assert.Equal(t, "25500.00", f.Text("sales_price"))
	assert.Equal(t, "773.97", f.Text("sales_tax"))
	assert.Equal(t, "26679.72", f.Text("balance"))
	assert.Equal(t, time.Now().Format("01/02/2006"), f.Text("date"))

	// zero charges stay off the sheet
	_, ok := f["trade_payoff"]
	assert.False(t, ok)
}

func TestFinancePackage_TradeGating(t *testing.T) {
	c := newComposer()

	parts, err := c.Package(testDeal(), testResult())
	require.NoError(t, err)
	assert.Len(t, parts, 8)

	deal := testDeal()
	deal.Trades = []domain.TradeIn{{VIN: "2HGFC2F59KH500001", Payoff: d("3000")}}
	parts, err = c.Package(deal, testResult())
	require.NoError(t, err)
	assert.Len(t, parts, 10)
	assert.Equal(t, "payoff_authorization", parts[9].TemplateID)
}

func TestFinanceFields(t *testing.T) {
	c := newComposer()
	f := domain.FieldMap{}
	parts, err := c.Package(testDeal(), testResult())
	require.NoError(t, err)
	for _, p := range parts {
		if p.TemplateID == "finance_disclosure" {
			f = p.Fields
		}
	}

	assert.Equal(t, "NEW", f.Text("LAWNEWUSED"))
	assert.Equal(t, "Toyota Camry", f.Text("LAWMAKEMODEL"))
	assert.Equal(t, "14.00", f.Text("LAWRATE"))
	assert.Equal(t, "Monthly", f.Text("When Payments Are Due"))
	assert.Equal(t, "773.97", f.Text("LAWSALESTAX"))
	assert.Equal(t, "1000.00", f.Text("LAWCASHDOWNPAY"))
}

func TestCompose_PackageOnlyKind(t *testing.T) {
	c := newComposer()
	_, err := c.Compose(domain.DocFIPackage, testDeal(), testResult())
	assert.Error(t, err)
}

func TestDirectory_Lookup(t *testing.T) {
	dir := compose.NewDirectory(compose.DefaultDealers())

	got, err := dir.Lookup("modern subaru of boone")
	require.NoError(t, err)
	assert.Equal(t, "28607", got.Zip)

	_, err = dir.Lookup("SOME OTHER STORE")
	assert.Error(t, err)

	list := dir.List()
	assert.Len(t, list, 16)
}
