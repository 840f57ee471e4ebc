package pinyin

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrMalformedRomanization 表示拼音串无法拆分为“字母串 + 声调数字”的音节序列。
var ErrMalformedRomanization = errors.New("pinyin: malformed romanization")

var (
	// 每个音节是一段非数字字符，紧跟一个 1-5 的声调数字。
	// 0、6-9 单独成为 Digit，语法里没有任何位置接受它，因此会直接报错。
	romanLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Tone", Pattern: `[1-5]`},
		{Name: "Digit", Pattern: `[0-9]`},
		{Name: "Letters", Pattern: `[^0-9]+`},
	})

	romanParser = participle.MustBuild[romanization](
		participle.Lexer(romanLexer),
	)
)

type romanization struct {
	Syllables []*Syllable `parser:"@@+"`
}

// Syllable 是拼音中的一个音节：Base 为字母部分，Tone 为声调（5 为轻声）。
type Syllable struct {
	Base string `parser:"@Letters" json:"base"`
	Tone Tone   `parser:"@Tone"    json:"tone"`
}

// String 还原为数字标调形式，例如 "guan1"。
func (s Syllable) String() string {
	return s.Base + strconv.Itoa(int(s.Tone))
}

// Capture implements participle.Capture.
func (t *Tone) Capture(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("tone capture requires exactly one digit, got %d", len(values))
	}
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return err
	}
	tone := Tone(n)
	if !tone.Valid() {
		return fmt.Errorf("tone %d out of range", n)
	}
	*t = tone
	return nil
}

// Decompose 将 "guan1xi5" 拆为 [{guan 1} {xi 5}]。
// 没有声调数字、连续数字、结尾缺少数字或出现 1-5 以外的数字时返回 ErrMalformedRomanization。
func Decompose(romanized string) ([]Syllable, error) {
	if romanized == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedRomanization)
	}
	parsed, err := romanParser.ParseString("", romanized)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedRomanization, romanized, err)
	}
	out := make([]Syllable, 0, len(parsed.Syllables))
	for _, s := range parsed.Syllables {
		out = append(out, *s)
	}
	return out, nil
}
