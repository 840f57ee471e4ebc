package layout

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidGridConfig 表示列数或每页行数不是正数。
var ErrInvalidGridConfig = errors.New("layout: invalid grid config")

// GridConfig 描述固定的卡片网格：每页 columns 列、rowsPerPage 行。
// 构造后不可修改，零值无效。
type GridConfig struct {
	columns     int
	rowsPerPage int
}

// NewGridConfig 校验并创建网格配置。
func NewGridConfig(columns, rowsPerPage int) (GridConfig, error) {
	if columns <= 0 || rowsPerPage <= 0 {
		return GridConfig{}, fmt.Errorf("%w: columns=%d rows_per_page=%d", ErrInvalidGridConfig, columns, rowsPerPage)
	}
	return GridConfig{columns: columns, rowsPerPage: rowsPerPage}, nil
}

// MustGridConfig is like NewGridConfig but panics on invalid input.
func MustGridConfig(columns, rowsPerPage int) GridConfig {
	g, err := NewGridConfig(columns, rowsPerPage)
	if err != nil {
		panic(err)
	}
	return g
}

func (g GridConfig) Columns() int     { return g.columns }
func (g GridConfig) RowsPerPage() int { return g.rowsPerPage }

// CardsPerPage 为一页（也是一个 spread）容纳的卡片数。
func (g GridConfig) CardsPerPage() int { return g.columns * g.rowsPerPage }

// RowsPerSpread 为正反两页合计的行数。
func (g GridConfig) RowsPerSpread() int { return 2 * g.rowsPerPage }

// Valid reports whether g was built through NewGridConfig.
func (g GridConfig) Valid() bool { return g.columns > 0 && g.rowsPerPage > 0 }

// Spreads 返回放下 n 张卡片所需的 spread 数，即 ceil(n / CardsPerPage)。
func (g GridConfig) Spreads(n int) int {
	if n <= 0 {
		return 0
	}
	per := g.CardsPerPage()
	return (n + per - 1) / per
}

// Pages 返回物理页数（每个 spread 正反两页）。
func (g GridConfig) Pages(n int) int { return 2 * g.Spreads(n) }

// RowsNeeded 返回需要设置行高的总行数；最后一个 spread 未填满时也按整页计算。
func (g GridConfig) RowsNeeded(n int) int { return g.RowsPerSpread() * g.Spreads(n) }

func (g GridConfig) String() string {
	return fmt.Sprintf("%dx%d", g.columns, g.rowsPerPage)
}

// MarshalJSON 输出网格参数及其派生值，供调试 JSON 使用。
func (g GridConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Columns       int `json:"columns"`
		RowsPerPage   int `json:"rowsPerPage"`
		CardsPerPage  int `json:"cardsPerPage"`
		RowsPerSpread int `json:"rowsPerSpread"`
	}{g.columns, g.rowsPerPage, g.CardsPerPage(), g.RowsPerSpread()})
}
