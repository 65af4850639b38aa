package render

import (
	"bytes"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/boddenberg/desking-go/internal/domain"
)

const (
	sheetMargin   = 36.0
	sheetWidth    = letterWidth - 2*sheetMargin
	gridTermWidth = 55.0
	gridCellWidth = 75.0
	rowHeight     = 16.0

	disclaimer = "* A.P.R Subject to equity and credit requirements."

	consentText = "By signing this authorization form, you certify that the above personal " +
		"information is correct and accurate, and authorize the release of credit and " +
		"employment information. By signing above, I provide to the dealership and its " +
		"affiliates consent to communicate with me about my vehicle or any future vehicles " +
		"using electronic, verbal and written communications including but not limited to " +
		"email, text messaging, SMS, phone calls and direct mail. Terms and Conditions " +
		"subject to credit approval. For Information Only. This is not an offer or " +
		"contract for sale."
)

// breakdownRows is the print order of the pricing column. Keys missing
// from the field map were zero on the deal and their row is skipped.
var breakdownRows = []struct {
	key   string
	label string
}{
	{"market_value", "Market Value"},
	{"savings", "Savings"},
	{"sales_price", "Sales Price"},
	{"trade_value", "Trade Value"},
	{"trade_payoff", "Trade Payoff"},
	{"doc_fee", "Doc Fee"},
	{"sales_tax", "Sales Tax"},
	{"non_tax_fees", "Non Tax Fees"},
	{"balance", "Balance"},
}

// QuoteSheet draws the one-page customer quote: store header, customer and
// vehicle blocks, the term-by-down-payment grid beside the pricing
// breakdown, then approval lines and the consent paragraph.
type QuoteSheet struct{}

func NewQuoteSheet() *QuoteSheet {
	return &QuoteSheet{}
}

func (r *QuoteSheet) Render(fields domain.FieldMap, res *domain.DeskResult) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: letterWidth, Ht: letterHeight},
	})
	pdf.SetMargins(sheetMargin, sheetMargin, sheetMargin)
	pdf.SetAutoPageBreak(true, sheetMargin)
	pdf.AddPage()

	r.drawHeader(pdf, fields)
	r.drawCustomer(pdf, fields)
	r.drawVehicle(pdf, fields)
	r.drawGridAndBreakdown(pdf, fields, res)
	r.drawFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *QuoteSheet) drawHeader(pdf *fpdf.Fpdf, fields domain.FieldMap) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(200, 16, "MODERN AUTOMOTIVE", "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	x := sheetMargin + 300
	for i, row := range [][2]string{
		{"Date:", fields.Text("date")},
		{"Sales Person:", fields.Text("salesperson")},
		{"Manager:", fields.Text("manager")},
	} {
		pdf.SetXY(x, sheetMargin+float64(i)*13)
		pdf.CellFormat(80, 12, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(150, 12, row[1], "", 0, "L", false, 0, "")
	}
	pdf.SetY(sheetMargin + 48)
}

func (r *QuoteSheet) drawCustomer(pdf *fpdf.Fpdf, fields domain.FieldMap) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(70, 13, "Customer", "", 0, "L", false, 0, "")
	pdf.CellFormat(230, 13, fields.Text("buyer"), "", 1, "L", false, 0, "")
	pdf.CellFormat(70, 13, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(230, 13, fields.Text("address"), "", 1, "L", false, 0, "")
	pdf.CellFormat(70, 13, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(230, 13, fields.Text("city_state_zip"), "", 1, "L", false, 0, "")
	pdf.CellFormat(70, 13, "Email", "", 0, "L", false, 0, "")
	pdf.CellFormat(230, 13, fields.Text("email"), "", 0, "L", false, 0, "")
	pdf.CellFormat(55, 13, "Phone", "", 0, "L", false, 0, "")
	pdf.CellFormat(160, 13, fields.Text("phone"), "", 1, "L", false, 0, "")
	pdf.Ln(10)
}

// vehicleCols mirrors the sheet's table: widths sum to the content width.
var vehicleCols = []float64{55, 65, 110, 80, 140, 90}

func (r *QuoteSheet) drawVehicle(pdf *fpdf.Fpdf, fields domain.FieldMap) {
	r.drawVehicleBanner(pdf, "VEHICLE")
	r.drawVehicleRows(pdf,
		[]string{"YEAR", "MAKE", "MODEL", "STOCK NO.", "VIN", "MILES"},
		[]string{
			fields.Text("year"), fields.Text("make"), fields.Text("model"),
			fields.Text("stock_no"), fields.Text("vin"), fields.Text("miles"),
		})

	for i, prefix := range []string{"trade_", "trade2_"} {
		if fields.Text(prefix+"vin") == "" {
			continue
		}
		banner := "TRADE-IN"
		if i == 1 {
			banner = "TRADE-IN 2"
		}
		r.drawVehicleBanner(pdf, banner)
		r.drawVehicleRows(pdf,
			[]string{"YEAR", "MAKE", "MODEL", "", "VIN", "MILES"},
			[]string{
				fields.Text(prefix + "year"), fields.Text(prefix + "make"),
				fields.Text(prefix + "model"), "",
				fields.Text(prefix + "vin"), fields.Text(prefix + "miles"),
			})
	}
	pdf.Ln(14)
}

func (r *QuoteSheet) drawVehicleBanner(pdf *fpdf.Fpdf, title string) {
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(sheetWidth, rowHeight, title, "1", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (r *QuoteSheet) drawVehicleRows(pdf *fpdf.Fpdf, headers, values []string) {
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(vehicleCols[i], rowHeight, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for i, v := range values {
		pdf.CellFormat(vehicleCols[i], rowHeight, v, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
}

func (r *QuoteSheet) drawGridAndBreakdown(pdf *fpdf.Fpdf, fields domain.FieldMap, res *domain.DeskResult) {
	top := pdf.GetY()

	// Payment grid, left side.
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "BI", 12)
	pdf.CellFormat(gridTermWidth, rowHeight, "Term", "1", 0, "C", true, 0, "")
	for _, down := range res.Matrix.DownPayments {
		pdf.CellFormat(gridCellWidth, rowHeight, "$"+down.StringFixed(2), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "I", 12)
	for _, row := range res.Matrix.Rows {
		pdf.CellFormat(gridTermWidth, rowHeight, strconv.Itoa(row.TermMonths), "1", 0, "C", false, 0, "")
		for _, payment := range row.Payments {
			pdf.CellFormat(gridCellWidth, rowHeight, "$"+payment.StringFixed(2), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Lease quotes show the lease-end value under the grid.
	if residual := leaseResidual(res.Matrix.Rows); !residual.IsZero() {
		gridWidth := gridTermWidth + float64(len(res.Matrix.DownPayments))*gridCellWidth
		pdf.SetFont("Helvetica", "BI", 10)
		pdf.CellFormat(gridWidth, rowHeight, "Residual Value: $"+residual.StringFixed(2), "", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	gridBottom := pdf.GetY()

	// Pricing breakdown, right side.
	breakdownX := sheetMargin + gridTermWidth + float64(len(res.Matrix.DownPayments))*gridCellWidth + 20
	pdf.SetFont("Helvetica", "", 10)
	y := top
	for _, row := range breakdownRows {
		amount := fields.Text(row.key)
		if amount == "" {
			continue
		}
		pdf.SetXY(breakdownX, y)
		pdf.CellFormat(100, 14, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(80, 14, "$"+amount, "B", 0, "R", false, 0, "")
		y += 14
	}

	if y < gridBottom {
		y = gridBottom
	}
	pdf.SetY(y + 24)
}

// leaseResidual returns the first nonzero residual in the grid. Finance
// rows carry none, so a nonzero value marks a lease quote.
func leaseResidual(rows []domain.MatrixRow) decimal.Decimal {
	for _, row := range rows {
		if !row.Residual.IsZero() {
			return row.Residual
		}
	}
	return decimal.Zero
}

func (r *QuoteSheet) drawFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(sheetWidth, 12, disclaimer, "", 1, "C", false, 0, "")
	pdf.Ln(20)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(130, 14, "Customer Approval:", "", 0, "C", false, 0, "")
	pdf.CellFormat(140, 14, "_________________________", "", 0, "C", false, 0, "")
	pdf.CellFormat(130, 14, "Management Approval:", "", 0, "C", false, 0, "")
	pdf.CellFormat(140, 14, "_________________________", "", 1, "C", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 6)
	pdf.MultiCell(sheetWidth, 8, consentText, "", "L", false)
}
