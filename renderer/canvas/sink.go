// Package canvasrenderer 把卡片网格渲染为 PDF，基于 github.com/tdewolff/canvas。
//
// 网格按 rowsPerPage 行切分为页面：第 0 页为第一面正面，第 1 页为其背面，依此类推，
// 可直接双面打印。
package canvasrenderer

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"sort"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/ByLCY/hanzicards/layout"
	"github.com/ByLCY/hanzicards/renderer"
)

const (
	cellPadding     = 1.5 // mm
	thinBorderWidth = 0.2 // mm
)

// Options configures the PDF sink.
type Options struct {
	FontPath    string // TTF/OTF，需覆盖 CJK 字符
	FontData    []byte // 优先于 FontPath
	Paper       string // A4 / A5 / Letter，默认 A4
	RowsPerPage int    // 每页网格行数，<=0 时所有行在同一页
	Title       string
	Compose     bool // 绘制前做 NFC 组合
}

type bufferedCell struct {
	at    layout.Coordinate
	text  string
	style layout.CellStyle
}

// Sink 缓存尺寸与单元格，Close 时一次性排版并写出 PDF。
type Sink struct {
	w      io.Writer
	opts   Options
	paperW float64
	paperH float64

	mu         sync.Mutex
	colWidths  map[int]float64 // mm
	rowHeights map[int]float64 // mm
	cells      []bufferedCell
	closed     bool

	family *canvas.FontFamily
	faceMu sync.Mutex
	faces  map[float64]*canvas.FontFace
}

var _ renderer.Sink = (*Sink)(nil)

// New 校验纸张并加载字体，字体无法加载时立即报错。
func New(w io.Writer, opts Options) (*Sink, error) {
	if w == nil {
		return nil, fmt.Errorf("pdf: writer 不能为空")
	}
	if opts.Paper == "" {
		opts.Paper = "A4"
	}
	paperW, paperH, err := layout.PaperSize(opts.Paper)
	if err != nil {
		return nil, err
	}
	family, err := loadFamily(opts)
	if err != nil {
		return nil, err
	}
	return &Sink{
		w:          w,
		opts:       opts,
		paperW:     paperW,
		paperH:     paperH,
		colWidths:  map[int]float64{},
		rowHeights: map[int]float64{},
		family:     family,
		faces:      map[float64]*canvas.FontFace{},
	}, nil
}

func loadFamily(opts Options) (*canvas.FontFamily, error) {
	data := opts.FontData
	if len(data) == 0 {
		if opts.FontPath == "" {
			return nil, fmt.Errorf("pdf: 需要指定字体文件（output.font）")
		}
		var err error
		data, err = os.ReadFile(opts.FontPath)
		if err != nil {
			return nil, fmt.Errorf("pdf: 读取字体 %s 失败: %w", opts.FontPath, err)
		}
	}
	family := canvas.NewFontFamily("hanzicards")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("pdf: 加载字体失败: %w", err)
	}
	return family, nil
}

func (s *Sink) SetColumnWidth(col int, width float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return renderer.ErrClosed
	}
	s.colWidths[col] = layout.ColumnWidthToMM(width)
	return nil
}

func (s *Sink) SetRowHeight(row int, height float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return renderer.ErrClosed
	}
	s.rowHeights[row] = layout.RowHeightToMM(height)
	return nil
}

func (s *Sink) WriteCell(at layout.Coordinate, text string, style layout.CellStyle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return renderer.ErrClosed
	}
	if s.opts.Compose {
		text = norm.NFC.String(text)
	}
	s.cells = append(s.cells, bufferedCell{at: at, text: text, style: style})
	return nil
}

// Close 渲染所有页面并写出 PDF；重复调用返回 ErrClosed。
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return renderer.ErrClosed
	}
	s.closed = true

	writer := pdf.New(s.w, s.paperW, s.paperH, nil)
	writer.SetInfo(s.opts.Title, "", "", "", "hanzicards")

	spans := pageSpans(s.rowCount(), s.opts.RowsPerPage)
	byPage := make([][]bufferedCell, len(spans))
	for _, cell := range s.cells {
		p := pageOf(cell.at.Row, spans)
		byPage[p] = append(byPage[p], cell)
	}

	for i, span := range spans {
		if i > 0 {
			writer.NewPage(s.paperW, s.paperH)
		}
		c := canvas.New(s.paperW, s.paperH)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // 左上角为原点，y 向下
		if err := s.drawPage(ctx, span, byPage[i]); err != nil {
			return err
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return nil
}

func (s *Sink) rowCount() int {
	n := 0
	for row := range s.rowHeights {
		n = max(n, row+1)
	}
	for _, cell := range s.cells {
		n = max(n, cell.at.Row+1)
	}
	return n
}

func (s *Sink) colCount() int {
	n := 0
	for col := range s.colWidths {
		n = max(n, col+1)
	}
	for _, cell := range s.cells {
		n = max(n, cell.at.Column+1)
	}
	return n
}

func (s *Sink) drawPage(ctx *canvas.Context, span rowSpan, cells []bufferedCell) error {
	colX := offsets(s.colCount(), s.colWidths, layout.ColumnWidthToMM(layout.DefaultColumnWidth))
	rowY := offsets(span.end-span.start, shiftRows(s.rowHeights, span.start), layout.RowHeightToMM(layout.DefaultRowHeight))
	originX := centerOffset(s.paperW, colX[len(colX)-1])
	originY := centerOffset(s.paperH, rowY[len(rowY)-1])

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].at.Row != cells[j].at.Row {
			return cells[i].at.Row < cells[j].at.Row
		}
		return cells[i].at.Column < cells[j].at.Column
	})
	for _, cell := range cells {
		r := cell.at.Row - span.start
		box := cellBox{
			x: originX + colX[cell.at.Column],
			y: originY + rowY[r],
			w: colX[cell.at.Column+1] - colX[cell.at.Column],
			h: rowY[r+1] - rowY[r],
		}
		if err := s.drawCell(ctx, box, cell); err != nil {
			return fmt.Errorf("绘制单元格 %s 失败: %w", cell.at, err)
		}
	}
	return nil
}

type cellBox struct{ x, y, w, h float64 }

func (s *Sink) drawCell(ctx *canvas.Context, box cellBox, cell bufferedCell) error {
	if cell.style.Border > 0 {
		ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
		ctx.SetStrokeColor(canvas.Black)
		ctx.SetStrokeWidth(borderWidth(cell.style.Border))
		ctx.DrawPath(box.x, box.y, canvas.Rectangle(box.w, box.h))
	}
	if cell.text == "" {
		return nil
	}

	size := cell.style.FontSize
	if size <= 0 {
		size = layout.DefaultBackStyle.FontSize
	}
	face := s.face(size)
	limit := math.Inf(1)
	if cell.style.Wrap {
		limit = box.w - 2*cellPadding
	}
	lines := greedyWrap(cell.text, limit, face.TextWidth)

	metrics := face.Metrics()
	lineHeight := metrics.LineHeight
	if lineHeight <= 0 {
		lineHeight = toMm(size) * 1.2
	}
	top := textTop(box.y, box.h, lineHeight*float64(len(lines)), cell.style.VAlign)

	var textAlign canvas.TextAlign
	var anchorX float64
	switch cell.style.Align {
	case layout.AlignCenter:
		textAlign = canvas.Center
		anchorX = box.x + box.w/2
	case layout.AlignRight:
		textAlign = canvas.Right
		anchorX = box.x + box.w - cellPadding
	default:
		textAlign = canvas.Left
		anchorX = box.x + cellPadding
	}

	for i, line := range lines {
		if line == "" {
			continue
		}
		baseline := top + float64(i)*lineHeight + metrics.Ascent
		ctx.DrawText(anchorX, baseline, canvas.NewTextLine(face, line, textAlign))
	}
	return nil
}

// face 按字号（pt）缓存字体面。
func (s *Sink) face(sizePt float64) *canvas.FontFace {
	s.faceMu.Lock()
	defer s.faceMu.Unlock()
	if f, ok := s.faces[sizePt]; ok {
		return f
	}
	f := s.family.Face(sizePt, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	s.faces[sizePt] = f
	return f
}

type rowSpan struct{ start, end int }

// pageSpans 把 rows 行切分为每页 perPage 行的区间；至少返回一页。
func pageSpans(rows, perPage int) []rowSpan {
	if rows <= 0 {
		return []rowSpan{{0, 0}}
	}
	if perPage <= 0 {
		perPage = rows
	}
	var spans []rowSpan
	for start := 0; start < rows; start += perPage {
		spans = append(spans, rowSpan{start: start, end: min(start+perPage, rows)})
	}
	return spans
}

func pageOf(row int, spans []rowSpan) int {
	for i, sp := range spans {
		if row >= sp.start && row < sp.end {
			return i
		}
	}
	return len(spans) - 1
}

func shiftRows(heights map[int]float64, start int) map[int]float64 {
	out := make(map[int]float64, len(heights))
	for row, h := range heights {
		if row >= start {
			out[row-start] = h
		}
	}
	return out
}

// offsets 返回 n+1 个累计位置，缺失的尺寸使用 fallback。
func offsets(n int, sizes map[int]float64, fallback float64) []float64 {
	out := make([]float64, n+1)
	for i := 0; i < n; i++ {
		size, ok := sizes[i]
		if !ok {
			size = fallback
		}
		out[i+1] = out[i] + size
	}
	return out
}

// centerOffset 让网格在纸张上居中；网格超出纸张时贴边。
func centerOffset(paper, content float64) float64 {
	return math.Max((paper-content)/2, 0)
}

func textTop(y, height, textHeight float64, valign string) float64 {
	switch valign {
	case layout.VAlignTop:
		return y + cellPadding
	case layout.VAlignBottom:
		return y + height - cellPadding - textHeight
	default:
		return y + (height-textHeight)/2
	}
}

// borderWidth 把 Excel 边框样式编号换算为线宽（mm）。
func borderWidth(style int) float64 {
	switch style {
	case 2, 8:
		return 0.5
	case 5:
		return 0.8
	case 6:
		return 0.6
	default:
		return thinBorderWidth
	}
}

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }
