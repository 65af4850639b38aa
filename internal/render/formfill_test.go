package render

import (
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
)

func newTestPDF() *fpdf.Fpdf {
	return fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: letterWidth, Ht: letterHeight},
	})
}

func TestFitFontSize_FitsWithinMax(t *testing.T) {
	size := fitFontSize(newTestPDF(), "short", 200, 16)
	assert.Equal(t, maxFieldFontSize, size)
}

func TestFitFontSize_ShrinksWideText(t *testing.T) {
	size := fitFontSize(newTestPDF(), strings.Repeat("WIDE", 40), 50, 16)
	assert.Less(t, size, maxFieldFontSize)
	assert.GreaterOrEqual(t, size, 1.0)
}

func TestFitFontSize_FlooredAtOne(t *testing.T) {
	// Both constraints push the size below a point.
	size := fitFontSize(newTestPDF(), strings.Repeat("W", 500), 8, 0.5)
	assert.Equal(t, 1.0, size)
}

func TestFitFontSize_MultilineHeight(t *testing.T) {
	// Four lines in a 16pt box cap the size at the line height.
	size := fitFontSize(newTestPDF(), "a\nb\nc\nd", 200, 16)
	assert.Equal(t, 4.0, size)
}
