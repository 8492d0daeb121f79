package common

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// HashString 計算字串的 SHA-1 哈希值（僅用於指紋與快取鍵，不做安全用途）
func HashString(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// NormalizeQuery 修剪查詢字串，空白字串視為未提供
func NormalizeQuery(value string) string {
	return strings.TrimSpace(value)
}

// SplitCommaList 將逗號分隔字串切成修剪後的非空項目
func SplitCommaList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Dedupe 去除重複項目，保留首次出現的順序
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// FormatList 將列表格式化為逗號分隔字串
func FormatList(items []string) string {
	return strings.Join(items, ", ")
}

// Clamp 將數值限制在 [min, max] 區間
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
