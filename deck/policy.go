package deck

import (
	"fmt"
	"strings"
)

// MalformedPolicy 决定拼音无法解析时的处理方式。
type MalformedPolicy int

const (
	// PolicyAbort 立即终止整批处理。
	PolicyAbort MalformedPolicy = iota
	// PolicySkip 把该行记入失败列表并继续。
	PolicySkip
)

func (p MalformedPolicy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	default:
		return "abort"
	}
}

// ParsePolicy 解析配置中的 "abort" / "skip"，空串视为 abort。
func ParsePolicy(s string) (MalformedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return PolicyAbort, nil
	case "skip":
		return PolicySkip, nil
	default:
		return PolicyAbort, fmt.Errorf("deck: unknown malformed romanization policy %q (want abort or skip)", s)
	}
}
