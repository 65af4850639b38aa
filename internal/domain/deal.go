package domain

import "github.com/shopspring/decimal"

// DealType selects which calculator prices the payment grid.
type DealType string

const (
	DealFinance DealType = "finance"
	DealLease   DealType = "lease"
)

// Condition is the new/used/certified flag on the vehicle.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
	ConditionCPO  Condition = "cpo"
)

// TradeIn is one trade-in vehicle on the deal. A trade participates in
// document output only when its VIN is non-empty; monetary fields are
// summed across all trades regardless.
type TradeIn struct {
	Year   string `json:"year"`
	Make   string `json:"make"`
	Model  string `json:"model"`
	VIN    string `json:"vin"`
	Miles  string `json:"miles"`
	Value  decimal.Decimal `json:"value"`
	Payoff decimal.Decimal `json:"payoff"`
	ACV    decimal.Decimal `json:"acv"`
}

// Lienholder identifies the financing bank on title and lien forms.
type Lienholder struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// Insurance is the buyer's policy referenced on title paperwork.
type Insurance struct {
	Company      string `json:"company"`
	PolicyNumber string `json:"policy_number"`
}

// DealRecord is the canonical input for one quote request. It is supplied
// by the external form-collection layer, consumed read-only by the pricing
// engine and matrix builder, and never persisted. Absent monetary fields
// are zero decimals, which every computation treats as "not entered".
type DealRecord struct {
	// Customer / store
	Customer    string `json:"customer"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	County      string `json:"county"`
	Salesperson string `json:"salesperson"`
	Manager     string `json:"manager"`
	Dealer      string `json:"dealer"`

	// Buyer identification for title work
	DriversLicense  string `json:"drivers_license"`
	PlateNumber     string `json:"plate_number"`
	PlateExpiration string `json:"plate_expiration"`

	// Vehicle
	Year        string    `json:"year"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Trim        string    `json:"trim"`
	BodyStyle   string    `json:"body_style"`
	FuelType    string    `json:"fuel_type"`
	VIN         string    `json:"vin"`
	StockNumber string    `json:"stock_number"`
	Odometer    string    `json:"odometer"`
	Condition   Condition `json:"condition"`

	VehicleCost decimal.Decimal `json:"vehicle_cost"`
	BookValue   decimal.Decimal `json:"book_value"`

	// Trade-ins (zero, one or two)
	Trades []TradeIn `json:"trades,omitempty"`

	// Money inputs
	MarketValue decimal.Decimal `json:"market_value"`
	Discount    decimal.Decimal `json:"discount"`
	Rebate      decimal.Decimal `json:"rebate"`
	DocFee      decimal.Decimal `json:"doc_fee"`
	NonTaxFees  decimal.Decimal `json:"non_tax_fees"`

	// Finance details
	Lienholder Lienholder `json:"lienholder"`
	Insurance  Insurance  `json:"insurance"`
}

// TradeValue returns the summed trade value across all trade-ins.
func (d *DealRecord) TradeValue() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range d.Trades {
		sum = sum.Add(t.Value)
	}
	return sum
}

// TradePayoff returns the summed payoff across all trade-ins.
func (d *DealRecord) TradePayoff() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range d.Trades {
		sum = sum.Add(t.Payoff)
	}
	return sum
}

// TradeACV returns the summed actual cash value across all trade-ins.
func (d *DealRecord) TradeACV() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range d.Trades {
		sum = sum.Add(t.ACV)
	}
	return sum
}

// Trade returns the i-th trade-in, or a zero value when absent. Documents
// with room for a single trade always use Trade(0).
func (d *DealRecord) Trade(i int) TradeIn {
	if i < 0 || i >= len(d.Trades) {
		return TradeIn{}
	}
	return d.Trades[i]
}

// HasTrade reports whether the i-th trade-in carries a VIN. VIN presence,
// not a nonzero value, is what gates trade sections on documents.
func (d *DealRecord) HasTrade(i int) bool {
	return d.Trade(i).VIN != ""
}

func (d *DealRecord) IsNew() bool {
	return d.Condition == ConditionNew
}
