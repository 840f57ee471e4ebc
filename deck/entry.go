// Package deck reads Pleco-style flashcard exports: one card per line, three
// tab-separated fields (headword, numeric-tone romanization, gloss).
package deck

import (
	"errors"
	"strings"
)

// ErrBadRecord 表示一行不能拆成恰好三个制表符分隔的字段。
var ErrBadRecord = errors.New("deck: record must have exactly three tab-separated fields")

// Entry 是一张卡片的内容，创建后不再修改。
type Entry struct {
	FrontText string `json:"frontText"` // 简体；若有繁体，换行后以 [..] 形式给出
	Romanized string `json:"romanized"` // 已带声调符号
	Raw       string `json:"raw"`       // 原始数字标调拼音
	Gloss     string `json:"gloss"`
}

// Record 是一行拆分后的三个原始字段。
type Record struct {
	Headword string
	Pinyin   string
	Gloss    string
}

// ParseRecord 去掉首尾空白后按制表符拆分，字段数不是 3 时 ok 为 false。
func ParseRecord(line string) (Record, bool) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) != 3 {
		return Record{}, false
	}
	return Record{Headword: fields[0], Pinyin: fields[1], Gloss: fields[2]}, true
}

// FrontText 把繁体部分放到单独一行：在每个 "[" 前插入换行。
func FrontText(headword string) string {
	return strings.ReplaceAll(headword, "[", "\n[")
}
