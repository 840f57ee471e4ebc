// Package xlsxrenderer writes the card grid into a single-sheet XLSX workbook
// via github.com/xuri/excelize/v2.
package xlsxrenderer

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/ByLCY/hanzicards/layout"
	"github.com/ByLCY/hanzicards/renderer"
)

const defaultSheet = "Cards"

// Excel 纸张编号。
var paperCodes = map[string]int{
	"LETTER": 1,
	"A4":     9,
	"A5":     11,
}

// Options configures the XLSX sink.
type Options struct {
	Sheet       string // 工作表名称，默认 Cards
	Paper       string // A4 / A5 / Letter，默认 A4
	RowsPerPage int    // >0 时每隔该行数插入分页符，保证每页正好一面
	BorderColor string // 十六进制颜色，默认 000000
}

// Sink 将单元格写入 excelize 工作簿，Close 时写出到 w。
type Sink struct {
	w      io.Writer
	file   *excelize.File
	sheet  string
	opts   Options
	mu     sync.Mutex
	styles map[layout.CellStyle]int
	closed bool
}

var _ renderer.Sink = (*Sink)(nil)

// New creates an XLSX sink that writes the finished workbook to w on Close.
func New(w io.Writer, opts Options) (*Sink, error) {
	if w == nil {
		return nil, fmt.Errorf("xlsx: writer 不能为空")
	}
	if opts.Sheet == "" {
		opts.Sheet = defaultSheet
	}
	if opts.Paper == "" {
		opts.Paper = "A4"
	}
	if opts.BorderColor == "" {
		opts.BorderColor = "000000"
	}
	paper, ok := paperCodes[strings.ToUpper(opts.Paper)]
	if !ok {
		return nil, fmt.Errorf("xlsx: 暂不支持的纸张尺寸：%s", opts.Paper)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), opts.Sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("xlsx: rename sheet: %w", err)
	}
	orientation := "portrait"
	if err := f.SetPageLayout(opts.Sheet, &excelize.PageLayoutOptions{Size: &paper, Orientation: &orientation}); err != nil {
		f.Close()
		return nil, fmt.Errorf("xlsx: page layout: %w", err)
	}
	return &Sink{
		w:      w,
		file:   f,
		sheet:  opts.Sheet,
		opts:   opts,
		styles: map[layout.CellStyle]int{},
	}, nil
}

func (s *Sink) SetColumnWidth(col int, width float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return renderer.ErrClosed
	}
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return err
	}
	return s.file.SetColWidth(s.sheet, name, name, width)
}

func (s *Sink) SetRowHeight(row int, height float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return renderer.ErrClosed
	}
	if err := s.file.SetRowHeight(s.sheet, row+1, height); err != nil {
		return err
	}
	if s.opts.RowsPerPage > 0 && row > 0 && row%s.opts.RowsPerPage == 0 {
		cell, err := excelize.CoordinatesToCellName(1, row+1)
		if err != nil {
			return err
		}
		if err := s.file.InsertPageBreak(s.sheet, cell); err != nil {
			return fmt.Errorf("page break before row %d: %w", row, err)
		}
	}
	return nil
}

func (s *Sink) WriteCell(at layout.Coordinate, text string, style layout.CellStyle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return renderer.ErrClosed
	}
	cell, err := excelize.CoordinatesToCellName(at.Column+1, at.Row+1)
	if err != nil {
		return err
	}
	styleID, err := s.styleID(style)
	if err != nil {
		return err
	}
	if err := s.file.SetCellValue(s.sheet, cell, text); err != nil {
		return err
	}
	return s.file.SetCellStyle(s.sheet, cell, cell, styleID)
}

// Close 写出工作簿并释放 excelize 资源，重复调用返回 ErrClosed。
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return renderer.ErrClosed
	}
	s.closed = true
	writeErr := s.file.Write(s.w)
	closeErr := s.file.Close()
	if writeErr != nil {
		return fmt.Errorf("xlsx: write workbook: %w", writeErr)
	}
	return closeErr
}

// styleID 对相同的 CellStyle 只创建一次 excelize 样式。
func (s *Sink) styleID(style layout.CellStyle) (int, error) {
	if id, ok := s.styles[style]; ok {
		return id, nil
	}
	id, err := s.file.NewStyle(toExcelStyle(style, s.opts.BorderColor))
	if err != nil {
		return 0, fmt.Errorf("xlsx: new style: %w", err)
	}
	s.styles[style] = id
	return id, nil
}

func toExcelStyle(style layout.CellStyle, borderColor string) *excelize.Style {
	st := &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: style.Align,
			Vertical:   style.VAlign,
			WrapText:   style.Wrap,
		},
	}
	if style.FontSize > 0 {
		st.Font = &excelize.Font{Size: style.FontSize}
	}
	if style.Border > 0 {
		for _, side := range []string{"left", "top", "right", "bottom"} {
			st.Border = append(st.Border, excelize.Border{Type: side, Color: borderColor, Style: style.Border})
		}
	}
	return st
}
