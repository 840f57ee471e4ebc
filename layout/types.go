package layout

// 该文件定义布局结果，供 renderer 输出与调试 JSON 共用。

// Card 是已经排版好文字的一张卡片：Front 为正面文本，Back 为背面文本。
type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Side 区分卡片正反面。
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// 水平/垂直对齐取值。
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"

	VAlignTop    = "top"
	VAlignCenter = "center"
	VAlignBottom = "bottom"
)

// CellStyle 只包含字号、对齐、折行与边框，样式到此为止。
type CellStyle struct {
	FontSize float64 `json:"fontSize"` // pt
	Align    string  `json:"align"`
	VAlign   string  `json:"valign"`
	Wrap     bool    `json:"wrap"`
	Border   int     `json:"border"` // Excel 边框样式编号，0 为无边框，5 为粗实线
}

// Cell 是一次带样式的单元格写入。
type Cell struct {
	Index int        `json:"index"`
	Side  Side       `json:"side"`
	At    Coordinate `json:"at"`
	Text  string     `json:"text"`
	Style CellStyle  `json:"style"`
}

// Result 保存整张表格的尺寸与全部单元格。
// Rows 覆盖所有 spread 的全部行，即使最后一个 spread 没有填满。
type Result struct {
	Grid        GridConfig `json:"grid"`
	Cards       int        `json:"cards"`
	Spreads     int        `json:"spreads"`
	Pages       int        `json:"pages"`
	Rows        int        `json:"rows"`
	Columns     int        `json:"columns"`
	RowHeight   float64    `json:"rowHeight"`
	ColumnWidth float64    `json:"columnWidth"`
	Cells       []Cell     `json:"cells"`
}
