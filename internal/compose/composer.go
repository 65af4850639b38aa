package compose

import (
	"time"

	"github.com/boddenberg/desking-go/internal/domain"
)

// Composer turns a deal and its desk result into the field values each
// document needs. It owns no rendering: output is a FieldMap keyed by the
// target form's field names.
type Composer struct {
	dealers *Directory
	now     func() time.Time
}

func NewComposer(dealers *Directory) *Composer {
	return &Composer{dealers: dealers, now: time.Now}
}

// PackagePart pairs one form template with its composed fields inside the
// finance and insurance packet.
type PackagePart struct {
	TemplateID string
	Fields     domain.FieldMap
}

// Compose builds the field map for a single document kind. The F&I package
// is multi-form and goes through Package instead.
func (c *Composer) Compose(kind domain.DocumentKind, deal *domain.DealRecord, res *domain.DeskResult) (domain.FieldMap, error) {
	switch kind {
	case domain.DocQuoteSheet:
		return c.quoteSheetFields(deal, res), nil
	case domain.DocBillOfSale:
		return c.billOfSaleFields(deal, res), nil
	case domain.DocTitleApplication:
		return c.titleFields(deal), nil
	case domain.DocOdometer:
		return c.odometerFields(deal), nil
	case domain.DocPrivacyNotice:
		return c.privacyFields(deal), nil
	default:
		return nil, &domain.ErrValidation{Field: "kind", Message: "document kind has no single-form field map"}
	}
}

// Package builds every form in the finance and insurance packet, in
// signing order. Trade disclosure forms are included only when the first
// trade-in carries a VIN.
func (c *Composer) Package(deal *domain.DealRecord, res *domain.DeskResult) ([]PackagePart, error) {
	parts := []PackagePart{
		{TemplateID: "bill_of_sale", Fields: c.billOfSaleFields(deal, res)},
		{TemplateID: "title_application", Fields: c.titleFields(deal)},
		{TemplateID: "odometer_disclosure", Fields: c.odometerFields(deal)},
		{TemplateID: "privacy_notice", Fields: c.privacyFields(deal)},
		{TemplateID: "finance_disclosure", Fields: c.financeFields(deal, res)},
		{TemplateID: "we_owe", Fields: c.weOweFields(deal)},
		{TemplateID: "buyers_guide", Fields: c.buyersGuideFields(deal)},
		{TemplateID: "vin_verification", Fields: c.vinVerifyFields(deal)},
	}
	if deal.HasTrade(0) {
		parts = append(parts,
			PackagePart{TemplateID: "trade_odometer_disclosure", Fields: c.tradeOdometerFields(deal)},
			PackagePart{TemplateID: "payoff_authorization", Fields: c.payoffFields(deal)},
		)
	}
	return parts, nil
}

// dealer resolves the selling store. An unknown name still produces a
// usable packet: the name prints, the address boxes stay blank.
func (c *Composer) dealer(deal *domain.DealRecord) DealerAddress {
	d, err := c.dealers.Lookup(deal.Dealer)
	if err != nil {
		return DealerAddress{Name: deal.Dealer}
	}
	return d
}

func (c *Composer) today() string {
	return c.now().Format("01/02/2006")
}
