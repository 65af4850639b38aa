package render

import (
	"bytes"
	"context"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/boddenberg/desking-go/internal/port"
)

const (
	letterWidth  = 612.0
	letterHeight = 792.0

	maxFieldFontSize = 10.0
	labelFontSize    = 4.0
)

// Filler draws field values onto form template layouts. Each template page
// becomes one PDF page: field boxes are outlined with their form labels so
// the printed page reads like the underlying form.
type Filler struct {
	store port.TemplateStore
}

func NewFiller(store port.TemplateStore) *Filler {
	return &Filler{store: store}
}

// Fill renders a single template with its field values.
func (f *Filler) Fill(ctx context.Context, templateID string, fields domain.FieldMap) ([]byte, error) {
	return f.render(ctx, []string{templateID}, []domain.FieldMap{fields})
}

// FillPackage renders several templates into one document, in order. The
// two slices are index-aligned.
func (f *Filler) FillPackage(ctx context.Context, templateIDs []string, fields []domain.FieldMap) ([]byte, error) {
	if len(templateIDs) != len(fields) {
		return nil, &domain.ErrValidation{Field: "templates", Message: "template and field counts differ"}
	}
	if len(templateIDs) == 0 {
		return nil, &domain.ErrValidation{Field: "templates", Message: "at least one template is required"}
	}
	return f.render(ctx, templateIDs, fields)
}

func (f *Filler) render(ctx context.Context, templateIDs []string, fields []domain.FieldMap) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: letterWidth, Ht: letterHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	for i, id := range templateIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tpl, err := f.store.Get(id)
		if err != nil {
			return nil, err
		}
		drawTemplate(pdf, tpl, fields[i])
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTemplate(pdf *fpdf.Fpdf, tpl domain.FormTemplate, fields domain.FieldMap) {
	for page := 1; page <= tpl.Pages; page++ {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: tpl.PageWidth, Ht: tpl.PageHeight})

		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(36, 24)
		pdf.CellFormat(tpl.PageWidth-72, 14, tpl.Title, "", 0, "C", false, 0, "")

		for _, field := range tpl.Fields {
			fieldPage := field.Page
			if fieldPage <= 0 {
				fieldPage = 1
			}
			if fieldPage != page {
				continue
			}
			drawField(pdf, field, fields[field.Name])
		}
	}
}

func drawField(pdf *fpdf.Fpdf, field domain.TemplateField, value any) {
	pdf.SetDrawColor(180, 180, 180)
	pdf.Rect(field.X, field.Y, field.Width, field.Height, "D")

	pdf.SetFont("Helvetica", "", labelFontSize)
	pdf.SetTextColor(130, 130, 130)
	pdf.Text(field.X, field.Y-1.5, field.Name)

	pdf.SetTextColor(0, 0, 0)
	switch field.Type {
	case "checkbox":
		checked, _ := value.(bool)
		if !checked {
			return
		}
		size := field.Height
		if size > maxFieldFontSize {
			size = maxFieldFontSize
		}
		pdf.SetFont("Helvetica", "B", size)
		pdf.SetXY(field.X, field.Y)
		pdf.CellFormat(field.Width, field.Height, "X", "", 0, "CM", false, 0, "")
	default:
		text, _ := value.(string)
		if text == "" {
			return
		}
		size := field.FontSize
		if size <= 0 {
			size = fitFontSize(pdf, text, field.Width, field.Height)
		}
		pdf.SetFont("Helvetica", "", size)
		if strings.Contains(text, "\n") {
			pdf.SetXY(field.X, field.Y)
			pdf.MultiCell(field.Width, size+1, text, "", "L", false)
			return
		}
		pdf.SetXY(field.X, field.Y)
		pdf.CellFormat(field.Width, field.Height, text, "", 0, "LM", false, 0, "")
	}
}

// fitFontSize shrinks the font until the text fits the field box, both in
// width (longest line) and height (line count). Floor of 1pt so very long
// values still render rather than vanish.
func fitFontSize(pdf *fpdf.Fpdf, text string, w, h float64) float64 {
	lines := strings.Split(text, "\n")

	pdf.SetFont("Helvetica", "", maxFieldFontSize)
	widest := 0.0
	for _, line := range lines {
		if sw := pdf.GetStringWidth(line); sw > widest {
			widest = sw
		}
	}

	size := maxFieldFontSize
	if widest > w && widest > 0 {
		size = maxFieldFontSize * (w / widest)
	}
	if lineHeight := h / float64(len(lines)); size > lineHeight {
		size = lineHeight
	}
	if size < 1 {
		size = 1
	}
	return size
}
