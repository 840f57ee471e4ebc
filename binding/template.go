package binding

import "fmt"

// 默认模板：正面只放词头，背面为拼音、空一行、释义。
const (
	DefaultFrontTemplate = "${headword}"
	DefaultBackTemplate  = "${romanized}\n\n${gloss}"
)

// 模板中可用的字段名。
const (
	FieldHeadword  = "headword"
	FieldRomanized = "romanized"
	FieldGloss     = "gloss"
	FieldRaw       = "raw" // 原始数字标调拼音
	FieldIndex     = "index"
)

var knownFields = map[string]bool{
	FieldHeadword:  true,
	FieldRomanized: true,
	FieldGloss:     true,
	FieldRaw:       true,
	FieldIndex:     true,
}

// CardTemplate 描述卡片正反面的文本模板。
type CardTemplate struct {
	Front string
	Back  string
}

// DefaultCardTemplate returns the templates that reproduce the classic card faces.
func DefaultCardTemplate() CardTemplate {
	return CardTemplate{Front: DefaultFrontTemplate, Back: DefaultBackTemplate}
}

// Validate 检查模板只引用已知字段，空模板视为使用默认值。
func (t CardTemplate) Validate() error {
	for _, tpl := range []string{t.Front, t.Back} {
		for _, p := range Placeholders(tpl) {
			if !knownFields[p] {
				return fmt.Errorf("binding: unknown template field %q", p)
			}
		}
	}
	return nil
}

// Render 用 fields 填充正反面模板。
func (t CardTemplate) Render(fields map[string]any) (front, back string) {
	frontTpl, backTpl := t.Front, t.Back
	if frontTpl == "" {
		frontTpl = DefaultFrontTemplate
	}
	if backTpl == "" {
		backTpl = DefaultBackTemplate
	}
	return Interpolate(frontTpl, fields), Interpolate(backTpl, fields)
}
