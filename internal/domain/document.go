package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DocumentKind enumerates the documents the composer knows how to build.
type DocumentKind string

const (
	DocQuoteSheet       DocumentKind = "quote_sheet"
	DocBillOfSale       DocumentKind = "bill_of_sale"
	DocTitleApplication DocumentKind = "title_application"
	DocOdometer         DocumentKind = "odometer_disclosure"
	DocPrivacyNotice    DocumentKind = "privacy_notice"
	DocFIPackage        DocumentKind = "finance_insurance_package"
)

// DocumentKinds lists every supported kind in presentation order.
func DocumentKinds() []DocumentKind {
	return []DocumentKind{
		DocQuoteSheet,
		DocBillOfSale,
		DocTitleApplication,
		DocOdometer,
		DocPrivacyNotice,
		DocFIPackage,
	}
}

// ParseDocumentKind validates a kind string from the wire.
func ParseDocumentKind(s string) (DocumentKind, error) {
	k := DocumentKind(s)
	for _, known := range DocumentKinds() {
		if k == known {
			return k, nil
		}
	}
	return "", &ErrValidation{Field: "kind", Message: fmt.Sprintf("unknown document kind %q", s)}
}

// FieldMap holds the values destined for one form: text fields as strings,
// checkboxes as bools. Keys absent from the map leave the field blank.
type FieldMap map[string]any

func (m FieldMap) SetText(key, value string) {
	m[key] = value
}

func (m FieldMap) SetBool(key string, value bool) {
	m[key] = value
}

// SetMoney writes a two-decimal string rendering of v. Zero amounts are
// skipped so optional charge rows stay blank on the printed form.
func (m FieldMap) SetMoney(key string, v decimal.Decimal) {
	if v.IsZero() {
		return
	}
	m[key] = v.StringFixed(2)
}

// SetMoneyAlways writes the amount even when zero, for totals that must
// always print.
func (m FieldMap) SetMoneyAlways(key string, v decimal.Decimal) {
	m[key] = v.StringFixed(2)
}

// Text returns the string value for key, or "" when absent or non-text.
func (m FieldMap) Text(key string) string {
	s, _ := m[key].(string)
	return s
}

// Bool returns the checkbox value for key.
func (m FieldMap) Bool(key string) bool {
	b, _ := m[key].(bool)
	return b
}

// Document is a rendered PDF ready to hand to the caller.
type Document struct {
	Kind     DocumentKind `json:"kind"`
	Filename string       `json:"filename"`
	Bytes    []byte       `json:"-"`
}

// TemplateField is one positioned field inside a form template. Width and
// Height are in points; FontSize zero means autosize to the box.
type TemplateField struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"` // "text" or "checkbox"
	Page     int     `json:"page"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	FontSize float64 `json:"font_size,omitempty"`
}

// FormTemplate describes one fillable form: page geometry plus fields.
type FormTemplate struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	PageWidth  float64         `json:"page_width"`
	PageHeight float64         `json:"page_height"`
	Pages      int             `json:"pages"`
	Fields     []TemplateField `json:"fields"`
}
