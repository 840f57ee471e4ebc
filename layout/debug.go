package layout

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// debugCard 把一张卡片的正反面放在一起，方便对照打印结果检查镜像位置。
type debugCard struct {
	Index int        `json:"index"`
	Page  int        `json:"page"` // 正面所在页，从 0 开始；背面在下一页
	Front Coordinate `json:"front"`
	Back  Coordinate `json:"back"`
	Text  [2]string  `json:"text"` // 正面、背面文本
}

type debugDoc struct {
	*Result
	Placements []debugCard `json:"placements"`
}

// EncodeDebug 写出布局结果，并附带按卡片归并的正反面坐标。
func EncodeDebug(w io.Writer, res *Result) error {
	doc := debugDoc{Result: res}
	if res != nil {
		doc.Placements = placements(res)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// WriteDebugJSON 把布局调试信息写到 path，必要时创建目录；res 为空时不写文件。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeDebug(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func placements(res *Result) []debugCard {
	out := make([]debugCard, res.Cards)
	for _, c := range res.Cells {
		if c.Index < 0 || c.Index >= len(out) {
			continue
		}
		d := &out[c.Index]
		d.Index = c.Index
		switch c.Side {
		case SideFront:
			d.Front = c.At
			d.Text[0] = c.Text
			if rpp := res.Grid.RowsPerPage(); rpp > 0 {
				d.Page = c.At.Row / rpp
			}
		case SideBack:
			d.Back = c.At
			d.Text[1] = c.Text
		}
	}
	return out
}
