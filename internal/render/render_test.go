package render_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boddenberg/desking-go/internal/domain"
	"github.com/boddenberg/desking-go/internal/infra/cache"
	"github.com/boddenberg/desking-go/internal/infra/observability"
	"github.com/boddenberg/desking-go/internal/infra/resilience"
	"github.com/boddenberg/desking-go/internal/render"
)

func writeTemplate(t *testing.T, dir string, tpl domain.FormTemplate) {
	t.Helper()
	raw, err := json.Marshal(tpl)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, tpl.ID+".json"), raw, 0o644))
}

func newStore(t *testing.T, dir string) *render.TemplateStore {
	t.Helper()
	cfg := resilience.Config{MaxRetries: 1, InitialBackoff: time.Millisecond}
	return render.NewTemplateStore(dir, cache.New[domain.FormTemplate](time.Minute), cfg, observability.NewMetrics())
}

func sampleTemplate() domain.FormTemplate {
	return domain.FormTemplate{
		ID:         "sample_form",
		Title:      "SAMPLE FORM",
		PageWidth:  612,
		PageHeight: 792,
		Pages:      1,
		Fields: []domain.TemplateField{
			{Name: "buyer", Type: "text", Page: 1, X: 60, Y: 80, Width: 200, Height: 16},
			{Name: "is_new", Type: "checkbox", Page: 1, X: 60, Y: 110, Width: 12, Height: 12},
		},
	}
}

func TestTemplateStore_Get(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, sampleTemplate())
	store := newStore(t, dir)

	tpl, err := store.Get("sample_form")
	require.NoError(t, err)
	assert.Equal(t, "SAMPLE FORM", tpl.Title)
	require.Len(t, tpl.Fields, 2)

	// second read is served from cache
	tpl, err = store.Get("sample_form")
	require.NoError(t, err)
	assert.Equal(t, "sample_form", tpl.ID)
}

func TestTemplateStore_Defaults(t *testing.T) {
	dir := t.TempDir()
	tpl := sampleTemplate()
	tpl.ID = ""
	tpl.Pages = 0
	raw, _ := json.Marshal(tpl)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bare.json"), raw, 0o644))

	got, err := newStore(t, dir).Get("bare")
	require.NoError(t, err)
	assert.Equal(t, "bare", got.ID)
	assert.Equal(t, 1, got.Pages)
}

func TestTemplateStore_NotFound(t *testing.T) {
	store := newStore(t, t.TempDir())

	_, err := store.Get("missing_form")
	var notFound *domain.ErrTemplateNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing_form", notFound.TemplateID)
}

func TestTemplateStore_RejectsPathTraversal(t *testing.T) {
	store := newStore(t, t.TempDir())

	for _, id := range []string{"", "../etc/passwd", `..\windows`, "a.b"} {
		_, err := store.Get(id)
		var verr *domain.ErrValidation
		assert.ErrorAs(t, err, &verr, "id %q", id)
	}
}

func TestFiller_Fill(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, sampleTemplate())
	filler := render.NewFiller(newStore(t, dir))

	fields := domain.FieldMap{}
	fields.SetText("buyer", "John Smith")
	fields.SetBool("is_new", true)

	out, err := filler.Fill(context.Background(), "sample_form", fields)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

// Keys without a matching template field are dropped silently; the output
// is byte-for-byte the same shape as a fill without them.
func TestFiller_IgnoresUnknownFields(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, sampleTemplate())
	filler := render.NewFiller(newStore(t, dir))

	known := domain.FieldMap{}
	known.SetText("buyer", "John Smith")

	withStray := domain.FieldMap{}
	withStray.SetText("buyer", "John Smith")
	withStray.SetText("no_such_field", "should vanish")
	withStray.SetBool("another_stray", true)

	base, err := filler.Fill(context.Background(), "sample_form", known)
	require.NoError(t, err)

	out, err := filler.Fill(context.Background(), "sample_form", withStray)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, len(base), len(out), "stray keys must not change the drawn output")
}

// A value far too long for its box shrinks to the 1pt floor and still
// renders instead of erroring out or disappearing.
func TestFiller_AutosizesLongValues(t *testing.T) {
	dir := t.TempDir()
	tpl := sampleTemplate()
	tpl.Fields = append(tpl.Fields, domain.TemplateField{
		Name: "remarks", Type: "text", Page: 1, X: 60, Y: 140, Width: 8, Height: 0.5,
	})
	writeTemplate(t, dir, tpl)
	filler := render.NewFiller(newStore(t, dir))

	fields := domain.FieldMap{}
	fields.SetText("remarks", strings.Repeat("WIDE VALUE ", 80))

	out, err := filler.Fill(context.Background(), "sample_form", fields)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFiller_FillPackage(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, sampleTemplate())
	second := sampleTemplate()
	second.ID = "second_form"
	writeTemplate(t, dir, second)
	filler := render.NewFiller(newStore(t, dir))

	out, err := filler.FillPackage(context.Background(),
		[]string{"sample_form", "second_form"},
		[]domain.FieldMap{{}, {}},
	)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	single, err := filler.Fill(context.Background(), "sample_form", domain.FieldMap{})
	require.NoError(t, err)
	assert.Greater(t, len(out), len(single), "two-form packet should outweigh one form")
}

func TestFiller_FillPackage_Validation(t *testing.T) {
	filler := render.NewFiller(newStore(t, t.TempDir()))
	var verr *domain.ErrValidation

	_, err := filler.FillPackage(context.Background(), []string{"a"}, nil)
	assert.ErrorAs(t, err, &verr)

	_, err = filler.FillPackage(context.Background(), nil, nil)
	assert.ErrorAs(t, err, &verr)
}

func TestQuoteSheet_Render(t *testing.T) {
	sheet := render.NewQuoteSheet()

	fields := domain.FieldMap{}
	fields.SetText("date", "08/31/2026")
	fields.SetText("dealer", "MODERN TOYOTA WINSTON")
	fields.SetText("buyer", "John Smith")
	fields.SetText("year", "2024")
	fields.SetText("make", "Toyota")
	fields.SetText("model", "Camry SE")
	fields.SetText("vin", "4T1G11AK5RU123456")
	fields.SetText("market_value", "26500.00")
	fields.SetText("sales_tax", "773.97")
	fields.SetText("balance", "26679.72")

	res := &domain.DeskResult{
		Matrix: domain.QuoteMatrix{
			DownPayments: []decimal.Decimal{decimal.NewFromInt(1000), decimal.NewFromInt(2000)},
			Rows: []domain.MatrixRow{
				{TermMonths: 60, Rate: decimal.NewFromFloat(0.14), Payments: []decimal.Decimal{
					decimal.RequireFromString("613.29"), decimal.RequireFromString("574.25"),
				}},
			},
		},
	}

	out, err := sheet.Render(fields, res)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

// Lease grids carry a residual on their rows; the sheet prints it as a
// line under the payment grid.
func TestQuoteSheet_Render_LeaseResidualLine(t *testing.T) {
	sheet := render.NewQuoteSheet()

	fields := domain.FieldMap{}
	fields.SetText("buyer", "John Smith")
	fields.SetText("market_value", "30000.00")

	res := &domain.DeskResult{
		Matrix: domain.QuoteMatrix{
			DownPayments: []decimal.Decimal{decimal.NewFromInt(3000)},
			Rows: []domain.MatrixRow{
				{TermMonths: 36, Rate: decimal.NewFromFloat(0.00125), Payments: []decimal.Decimal{
					decimal.RequireFromString("315.44"),
				}},
			},
		},
	}

	withoutResidual, err := sheet.Render(fields, res)
	require.NoError(t, err)

	res.Matrix.Rows[0].Residual = decimal.NewFromInt(18000)
	withResidual, err := sheet.Render(fields, res)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(withResidual, []byte("%PDF")))
	assert.Greater(t, len(withResidual), len(withoutResidual), "residual line should add drawn content")
}
