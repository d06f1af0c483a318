package util

import "strings"

// NormalizeAnswer 在比较答案之前做归一化：去掉首尾空白、转小写、
// 剔除零宽字符。选项文本可能是从渲染后的页面复制粘贴来的，
// 带零宽空格也必须判等成功。
func NormalizeAnswer(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\u200b', '\u200c', '\u200d', '\ufeff':
			return -1
		}
		return r
	}, s)
	return strings.ToLower(strings.TrimSpace(s))
}

// AnswersEqual 按归一化后的形式判断两个答案是否相同
func AnswersEqual(a, b string) bool {
	return NormalizeAnswer(a) == NormalizeAnswer(b)
}
