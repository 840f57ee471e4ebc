package layout

import "fmt"

// Build 为每张卡片生成正反两个单元格，并给出整张表需要设置尺寸的行列数。
func Build(cards []Card, grid GridConfig, opts BuildOptions) (*Result, error) {
	if !grid.Valid() {
		return nil, fmt.Errorf("%w: zero value", ErrInvalidGridConfig)
	}
	opts = opts.withDefaults()

	n := len(cards)
	res := &Result{
		Grid:        grid,
		Cards:       n,
		Spreads:     grid.Spreads(n),
		Pages:       grid.Pages(n),
		Rows:        grid.RowsNeeded(n),
		Columns:     grid.Columns(),
		RowHeight:   opts.RowHeight,
		ColumnWidth: opts.ColumnWidth,
		Cells:       make([]Cell, 0, 2*n),
	}

	for i, card := range cards {
		p := Place(i, grid)
		res.Cells = append(res.Cells,
			Cell{Index: i, Side: SideFront, At: p.Front, Text: card.Front, Style: *opts.FrontStyle},
			Cell{Index: i, Side: SideBack, At: p.Back, Text: card.Back, Style: *opts.BackStyle},
		)
	}
	return res, nil
}
