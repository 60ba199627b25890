package service

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultExcerptRadius 是命中位置两侧各截取的字符数。
	DefaultExcerptRadius = 180
	// excerptHeadLen 是无检索词（或无命中）时返回的开头字符数。
	excerptHeadLen = 280
	// ellipsis 是摘要窗口被截断时的省略标记。
	ellipsis = "…"
)

// ExtractTerms 把检索串按空白切分为高亮/定位用的词项。
// 每个词项去掉开头连续的 +/- 前缀（这是查询语法提示，不是内容），
// 去掉后为空的词项丢弃。注意：'-' 前缀不会触发排除语义，
// 所有词项都按正向匹配处理。
func ExtractTerms(query string) []string {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.TrimLeft(f, "+-")
		if t == "" {
			continue
		}
		terms = append(terms, t)
	}
	return terms
}

// BuildExcerpt 从全文中截取一个以最早命中位置为中心的有界摘要窗口。
// 没有检索词或没有任何命中时，返回开头 280 个字符（不加省略标记）。
// 命中时窗口为 [hit-radius, hit+radius]，两端未到文本边界时加省略标记。
// 这是刻意的单窗口实现，不做多命中拼接。
func BuildExcerpt(text, query string, radius int) string {
	if text == "" {
		return ""
	}
	if radius <= 0 {
		radius = DefaultExcerptRadius
	}

	terms := ExtractTerms(query)
	if len(terms) == 0 {
		return headExcerpt(text)
	}

	// 大小写不敏感的字面匹配，取所有词项中最早出现的位置
	lowered := strings.ToLower(text)
	hit := -1
	for _, term := range terms {
		idx := strings.Index(lowered, strings.ToLower(term))
		if idx >= 0 && (hit < 0 || idx < hit) {
			hit = idx
		}
	}
	if hit < 0 {
		return headExcerpt(text)
	}

	// 窗口按字符（rune）计算，避免把多字节字符截成两半
	runes := []rune(text)
	hitRune := utf8.RuneCountInString(text[:hit])

	start := hitRune - radius
	if start < 0 {
		start = 0
	}
	end := hitRune + radius
	if end > len(runes) {
		end = len(runes)
	}

	excerpt := string(runes[start:end])
	if start > 0 {
		excerpt = ellipsis + excerpt
	}
	if end < len(runes) {
		excerpt = excerpt + ellipsis
	}
	return excerpt
}

// headExcerpt 返回文本开头至多 280 个字符。
func headExcerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptHeadLen {
		return text
	}
	return string(runes[:excerptHeadLen])
}
