package topics

import "strings"

// quoteCutset 句子頭尾要剝除的引號字元（含彎引號）
const quoteCutset = "\"'“”‘’"

// SanitizeSentence 清理生成的句子：剝除頭尾引號、修剪空白，
// 並以字數上限做硬截斷。截斷只在字界發生，不會切到字中間。
func SanitizeSentence(s string, maxWords int) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, quoteCutset)
	s = strings.TrimSpace(s)

	words := strings.Fields(s)
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
	}
	return strings.Join(words, " ")
}
