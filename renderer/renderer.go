package renderer

import (
	"errors"
	"fmt"

	"github.com/ByLCY/hanzicards/layout"
)

// Sink 接收尺寸设置与带样式的单元格写入，例如 XLSX 工作表或 PDF 文档。
// Close 在全部写入完成后调用且只调用一次，负责落盘或刷新输出。
type Sink interface {
	SetColumnWidth(col int, width float64) error
	SetRowHeight(row int, height float64) error
	WriteCell(at layout.Coordinate, text string, style layout.CellStyle) error
	Close() error
}

// Emit 先设置所有列宽与行高（包括最后一个 spread 中未使用的行），
// 再按卡片顺序写入单元格，最后关闭 sink。
// 即使中途出错也会关闭一次，返回合并后的错误。
func Emit(result *layout.Result, sink Sink) (err error) {
	if sink == nil {
		return fmt.Errorf("renderer: sink 不能为空")
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("renderer: close: %w", cerr))
		}
	}()
	if result == nil {
		return fmt.Errorf("renderer: 布局结果为空")
	}

	for col := 0; col < result.Columns; col++ {
		if err := sink.SetColumnWidth(col, result.ColumnWidth); err != nil {
			return fmt.Errorf("renderer: column %d width: %w", col, err)
		}
	}
	for row := 0; row < result.Rows; row++ {
		if err := sink.SetRowHeight(row, result.RowHeight); err != nil {
			return fmt.Errorf("renderer: row %d height: %w", row, err)
		}
	}
	for _, cell := range result.Cells {
		if err := sink.WriteCell(cell.At, cell.Text, cell.Style); err != nil {
			return fmt.Errorf("renderer: write %s of card %d at %s: %w", cell.Side, cell.Index, cell.At, err)
		}
	}
	return nil
}
