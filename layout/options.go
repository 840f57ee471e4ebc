package layout

// 默认尺寸沿用 5 行 x 2 列在 A4 上实测可用的数值，单位为表格软件的行高/列宽单位。
const (
	DefaultRowHeight   = 140.0
	DefaultColumnWidth = 40.0
)

// DefaultFrontStyle 为正面（汉字）样式：大字号、居中、折行、粗边框。
var DefaultFrontStyle = CellStyle{
	FontSize: 40,
	Align:    AlignCenter,
	VAlign:   VAlignCenter,
	Wrap:     true,
	Border:   5,
}

// DefaultBackStyle 为背面（拼音与释义）样式：小字号、垂直居中、折行、粗边框。
var DefaultBackStyle = CellStyle{
	FontSize: 14,
	Align:    AlignCenter,
	VAlign:   VAlignCenter,
	Wrap:     true,
	Border:   5,
}

// BuildOptions 配置布局阶段的尺寸与样式，零值字段使用默认值。
type BuildOptions struct {
	RowHeight   float64
	ColumnWidth float64
	FrontStyle  *CellStyle
	BackStyle   *CellStyle
}

func (o BuildOptions) withDefaults() BuildOptions {
	if o.RowHeight <= 0 {
		o.RowHeight = DefaultRowHeight
	}
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = DefaultColumnWidth
	}
	if o.FrontStyle == nil {
		s := DefaultFrontStyle
		o.FrontStyle = &s
	}
	if o.BackStyle == nil {
		s := DefaultBackStyle
		o.BackStyle = &s
	}
	return o
}
