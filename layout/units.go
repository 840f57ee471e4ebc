package layout

import (
	"fmt"
	"strings"
)

// This file converts spreadsheet sizing units to millimetres for page renderers.

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// Spreadsheet column widths are measured in characters of the default font.
// One character is 7px plus 5px of padding for the column, at 96 dpi.
const (
	charWidthPx     = 7.0
	columnPaddingPx = 5.0
	pxToMm          = 25.4 / 96.0
)

// RowHeightToMM converts a spreadsheet row height (points) to millimetres.
func RowHeightToMM(height float64) float64 { return height * PtToMm }

// ColumnWidthToMM converts a spreadsheet column width (characters) to millimetres.
func ColumnWidthToMM(width float64) float64 {
	if width <= 0 {
		return 0
	}
	return (width*charWidthPx + columnPaddingPx) * pxToMm
}

var paperPresets = map[string][2]float64{
	"A4":     {210, 297},
	"A5":     {148, 210},
	"LETTER": {215.9, 279.4},
}

// PaperSize returns the portrait width and height in mm of a named paper size.
func PaperSize(name string) (float64, float64, error) {
	base, ok := paperPresets[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, 0, fmt.Errorf("暂不支持的纸张尺寸：%s", name)
	}
	return base[0], base[1], nil
}
