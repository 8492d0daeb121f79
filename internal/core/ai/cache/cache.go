package cache

import (
	"context"
	"strconv"
	"strings"

	"table-talk/internal/pkg/common"
)

// Store 話題快取介面；實作需可安全地被多個請求同時存取
type Store interface {
	// Get 取得快取值；過期或不存在時回傳 ("", false)
	Get(ctx context.Context, key string) (string, bool)

	// Set 以設定的 TTL 寫入快取
	Set(ctx context.Context, key string, value string)

	// Close 釋放資源
	Close() error
}

// Key 由語義相關的請求欄位組出確定性的快取鍵。
// 只取主題、人數與正規化後的提示文字，表面寫法不同但語義相同的請求會命中同一筆。
func Key(theme string, people int, hint string) string {
	theme = strings.ToLower(strings.TrimSpace(theme))
	hint = strings.ToLower(strings.Join(strings.Fields(hint), " "))
	raw := theme + "|" + strconv.Itoa(people) + "|" + hint
	return "topics:" + common.HashString(raw)
}
