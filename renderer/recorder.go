package renderer

import (
	"errors"

	"github.com/ByLCY/hanzicards/layout"
)

// ErrClosed 表示在 Close 之后继续写入。
var ErrClosed = errors.New("renderer: sink already closed")

// Recorder 是只记录调用的内存 sink，用于 dry-run 与测试。
type Recorder struct {
	ColumnWidths map[int]float64
	RowHeights   map[int]float64
	Cells        map[layout.Coordinate]RecordedCell
	Writes       int
	Closes       int
}

// RecordedCell 保存一次写入的文本与样式。
type RecordedCell struct {
	Text  string
	Style layout.CellStyle
}

var _ Sink = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		ColumnWidths: map[int]float64{},
		RowHeights:   map[int]float64{},
		Cells:        map[layout.Coordinate]RecordedCell{},
	}
}

func (r *Recorder) SetColumnWidth(col int, width float64) error {
	if r.Closes > 0 {
		return ErrClosed
	}
	r.ColumnWidths[col] = width
	return nil
}

func (r *Recorder) SetRowHeight(row int, height float64) error {
	if r.Closes > 0 {
		return ErrClosed
	}
	r.RowHeights[row] = height
	return nil
}

func (r *Recorder) WriteCell(at layout.Coordinate, text string, style layout.CellStyle) error {
	if r.Closes > 0 {
		return ErrClosed
	}
	r.Cells[at] = RecordedCell{Text: text, Style: style}
	r.Writes++
	return nil
}

func (r *Recorder) Close() error {
	r.Closes++
	return nil
}
