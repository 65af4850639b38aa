package domain

import "github.com/shopspring/decimal"

// QuoteRow is one requested grid row: a term paired with either a finance
// rate or a lease money factor plus residual fraction.
type QuoteRow struct {
	TermMonths int             `json:"term_months"`
	Rate       decimal.Decimal `json:"rate"`
	Residual   decimal.Decimal `json:"residual,omitempty"`
}

// MatrixRow is one computed grid row. Payments is index-aligned with the
// matrix DownPayments slice. Residual is the lease-end value for lease
// rows and zero on finance rows.
type MatrixRow struct {
	TermMonths int               `json:"term_months"`
	Rate       decimal.Decimal   `json:"rate"`
	Residual   decimal.Decimal   `json:"residual"`
	Payments   []decimal.Decimal `json:"payments"`
}

// QuoteMatrix is the term-by-down-payment payment grid. Rows preserve the
// request order; no sorting or deduplication happens here.
type QuoteMatrix struct {
	DownPayments []decimal.Decimal `json:"down_payments"`
	Rows         []MatrixRow       `json:"rows"`
}

// Pricing carries the deal-level amounts derived before any payment math.
type Pricing struct {
	TaxableAmount     decimal.Decimal `json:"taxable_amount"`
	SalesTax          decimal.Decimal `json:"sales_tax"`
	Balance           decimal.Decimal `json:"balance"`
	GrossProfit       decimal.Decimal `json:"gross_profit"`
	JurisdictionKnown bool            `json:"jurisdiction_known"`
}

// DeskResult is the full outcome of desking one deal: pricing, the payment
// matrix and the per-down-payment loan-to-value row.
type DeskResult struct {
	QuoteID  string            `json:"quote_id"`
	Pricing  Pricing           `json:"pricing"`
	Matrix   QuoteMatrix       `json:"matrix"`
	LTV      []decimal.Decimal `json:"ltv"`
	Warnings []string          `json:"warnings,omitempty"`
}
