package layout

import (
	"math"
	"testing"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 140, 1000}
	for _, pt := range samples {
		mm := pt * PtToMm
		back := mm * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt mm=%g back=%g diff=%g", pt, mm, back, diff)
		}
	}
}

// TestDefaultCellFitsA4 验证默认 5x2 网格的行高与列宽可以放进一张 A4。
func TestDefaultCellFitsA4(t *testing.T) {
	w, h, err := PaperSize("a4")
	if err != nil {
		t.Fatalf("PaperSize: %v", err)
	}
	rowMM := RowHeightToMM(DefaultRowHeight)
	colMM := ColumnWidthToMM(DefaultColumnWidth)
	if got := 5 * rowMM; got > h {
		t.Fatalf("5 行总高 %gmm 超出 A4 高度 %gmm", got, h)
	}
	if got := 2 * colMM; got > w {
		t.Fatalf("2 列总宽 %gmm 超出 A4 宽度 %gmm", got, w)
	}
	if math.Abs(rowMM-49.39) > 0.01 {
		t.Fatalf("140pt 行高应约为 49.39mm，实际 %g", rowMM)
	}
}

func TestColumnWidthToMM(t *testing.T) {
	if got := ColumnWidthToMM(0); got != 0 {
		t.Fatalf("零列宽应为 0，实际 %g", got)
	}
	// 40 字符 = 285px = 75.406mm
	if got := ColumnWidthToMM(40); math.Abs(got-75.40625) > 1e-6 {
		t.Fatalf("40 字符列宽换算错误: %g", got)
	}
}

func TestPaperSizeUnknown(t *testing.T) {
	if _, _, err := PaperSize("B9"); err == nil {
		t.Fatalf("未知纸张应返回错误")
	}
}
