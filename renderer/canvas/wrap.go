package canvasrenderer

import (
	"math"
	"strings"
	"unicode"
)

// greedyWrap 贪心换行：优先在空白处断开，单个词超过 limit 时在词内拆分。
// 显式换行始终保留，空行返回空串。measure 与 limit 同为 mm。
func greedyWrap(content string, limit float64, measure func(string) float64) []string {
	if limit <= 0 || math.IsInf(limit, 1) {
		limit = math.MaxFloat64
	}

	var lines []string
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, "")
			}
			return
		}
		lines = append(lines, strings.TrimRightFunc(builder.String(), unicode.IsSpace))
		builder.Reset()
		currentWidth = 0
	}
	appendToken := func(token string) {
		// 行首空白丢弃
		if builder.Len() == 0 && strings.TrimSpace(token) == "" {
			return
		}
		builder.WriteString(token)
		currentWidth += measure(token)
	}

	for _, token := range tokenizeContent(content) {
		if token == "\n" {
			emit(true)
			continue
		}
		tokenWidth := measure(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token)
			continue
		}
		for _, chunk := range splitTokenByWidth(token, limit, measure) {
			if currentWidth > 0 && currentWidth+measure(chunk) > limit {
				emit(false)
			}
			appendToken(chunk)
		}
	}
	emit(true)
	return lines
}

// tokenizeContent 把文本切成交替的空白/非空白片段，"\n" 单独成为一个片段。
// 汉字之间没有空白，每个汉字单独成段以便在字间换行。
func tokenizeContent(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		if unicode.Is(unicode.Han, r) {
			flush()
			tokens = append(tokens, string(r))
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

// splitTokenByWidth 在字形簇之间拆分超宽的词：组合附加符号（如声调符号）
// 始终与前面的基字符留在同一段。
func splitTokenByWidth(token string, limit float64, measure func(string) float64) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var current strings.Builder
	for _, cluster := range clusters(token) {
		if current.Len() > 0 && measure(current.String()+cluster) > limit {
			parts = append(parts, current.String())
			current.Reset()
		}
		current.WriteString(cluster)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// clusters 把基字符与其后的组合附加符号（Mn）合成一段。
func clusters(s string) []string {
	var out []string
	start := -1
	for i, r := range s {
		if unicode.Is(unicode.Mn, r) && start >= 0 {
			continue
		}
		if start >= 0 {
			out = append(out, s[start:i])
		}
		start = i
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}
