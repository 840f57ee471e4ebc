// Package binding 负责把卡片模板中的 ${field} 占位符替换为词条字段。
package binding

import (
	"fmt"
	"regexp"
	"strings"
)

// 占位符只允许一个字段名，两侧空白忽略：${gloss}、${ romanized }。
var fieldPattern = regexp.MustCompile(`\$\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}`)

// Fields 组装一张卡片可用的模板字段，index 从 1 开始计数。
func Fields(index int, headword, romanized, raw, gloss string) map[string]any {
	return map[string]any{
		FieldIndex:     index,
		FieldHeadword:  headword,
		FieldRomanized: romanized,
		FieldRaw:       raw,
		FieldGloss:     gloss,
	}
}

// Interpolate 用 fields 填充卡片某一面的模板。
// 未知字段保留原样；替换只做一遍，字段值里的 ${...} 不会再被展开。
func Interpolate(text string, fields map[string]any) string {
	if len(fields) == 0 || !strings.Contains(text, "${") {
		return text
	}
	return fieldPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := fieldPattern.FindStringSubmatch(match)[1]
		val, ok := fields[name]
		if !ok {
			return match
		}
		return fmt.Sprint(val)
	})
}

// Placeholders 返回模板中出现的字段名，按出现顺序，不去重。
// 不符合字段名格式的 ${...} 不算占位符。
func Placeholders(text string) []string {
	var out []string
	for _, groups := range fieldPattern.FindAllStringSubmatch(text, -1) {
		out = append(out, groups[1])
	}
	return out
}
