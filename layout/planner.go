package layout

import "fmt"

// Coordinate 指向无限网格中的一个单元格，行列均从 0 开始。
type Coordinate struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Column) }

// Placement 记录第 Index 张卡片正反面所在的单元格。
type Placement struct {
	Index int        `json:"index"`
	Front Coordinate `json:"front"`
	Back  Coordinate `json:"back"`
}

// FrontCoordinate 返回第 index 张卡片正面的位置。
// 卡片按阅读顺序先填满一个 spread 的正面页，spread 从 0 开始编号。
func FrontCoordinate(index int, grid GridConfig) Coordinate {
	checkIndex(index, grid)
	spread := index / grid.CardsPerPage()
	baseRow := spread * grid.RowsPerSpread()
	withinPage := index % grid.CardsPerPage()
	return Coordinate{
		Row:    baseRow + withinPage/grid.Columns(),
		Column: index % grid.Columns(),
	}
}

// BackCoordinate 返回第 index 张卡片背面的位置：位于同一 spread 的背面页，
// 行号下移 RowsPerPage，列号左右镜像，使双面打印沿短边翻转后正反对齐。
func BackCoordinate(index int, grid GridConfig) Coordinate {
	front := FrontCoordinate(index, grid)
	return Coordinate{
		Row:    front.Row + grid.RowsPerPage(),
		Column: grid.Columns() - 1 - front.Column,
	}
}

// Place 同时计算正反面位置。
func Place(index int, grid GridConfig) Placement {
	return Placement{
		Index: index,
		Front: FrontCoordinate(index, grid),
		Back:  BackCoordinate(index, grid),
	}
}

func checkIndex(index int, grid GridConfig) {
	if index < 0 {
		panic(fmt.Sprintf("layout: negative card index %d", index))
	}
	if !grid.Valid() {
		panic("layout: zero GridConfig, use NewGridConfig")
	}
}
