package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按像素宽度自动换行
//
// 换行规则:
//   - 在单词之间断行，连续空白折叠为一个空格
//   - 单个单词超过最大宽度时按字符强制断开
//   - font 为 nil 或 maxWidth <= 0 时不换行
//
// 空白文本返回 nil
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if font == nil || maxWidth <= 0 {
		if words := strings.Fields(textStr); len(words) > 0 {
			return []string{strings.Join(words, " ")}
		}
		return nil
	}
	return wrapWords(textStr, maxWidth, func(s string) float64 {
		return MeasureTextWidth(s, font)
	})
}

// MeasureTextWidth 测量单行文本的像素宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// wrapWords 按给定的测量函数折行，便于在没有字体时测试
func wrapWords(textStr string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(word) <= maxWidth {
			current = word
			continue
		}

		// 超长单词：逐字符填满每一行
		for word != "" {
			r, size := utf8.DecodeRuneInString(word)
			char := string(r)
			if current != "" && measure(current+char) > maxWidth {
				lines = append(lines, current)
				current = ""
			}
			current += char
			word = word[size:]
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
