package pinyin

import (
	"strings"
	"unicode"
)

// Tone 为数字声调，1-4 为四声，5 为轻声。
type Tone int

const (
	Level   Tone = 1 // 阴平
	Rising  Tone = 2 // 阳平
	Dipping Tone = 3 // 上声
	Falling Tone = 4 // 去声
	Neutral Tone = 5 // 轻声
)

// 组合附加符号，直接跟在元音之后。
const (
	markLevel   = "\u0304"
	markRising  = "\u0301"
	markDipping = "\u030c"
	markFalling = "\u0300"
)

const vowels = "aeiou\u00fc"

// Valid reports whether t is one of the five tones.
func (t Tone) Valid() bool { return t >= Level && t <= Neutral }

// Mark returns the combining diacritic for t; the neutral tone has none.
func (t Tone) Mark() string {
	switch t {
	case Level:
		return markLevel
	case Rising:
		return markRising
	case Dipping:
		return markDipping
	case Falling:
		return markFalling
	default:
		return ""
	}
}

// TonifySyllable 把声调符号加在 base 中第一个出现的元音上（大小写不敏感）。
// 这是简单的“首元音”规则，并非完整的拼音标调规则：guan 标在 u 上而不是 a 上。
// 没有元音时原样返回。
func TonifySyllable(base string, tone Tone) string {
	for i, r := range base {
		if !strings.ContainsRune(vowels, unicode.ToLower(r)) {
			continue
		}
		end := i + len(string(r))
		return base[:end] + tone.Mark() + base[end:]
	}
	return base
}

// Tonify 将数字标调的拼音转换为带声调符号的形式，音节之间不加分隔符。
func Tonify(romanized string) (string, error) {
	syllables, err := Decompose(romanized)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range syllables {
		b.WriteString(TonifySyllable(s.Base, s.Tone))
	}
	return b.String(), nil
}
