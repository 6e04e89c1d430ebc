package chatbot

import (
	"strings"

	"github.com/tony19053000/chatbot/internal/model"
)

// Resolve 判定资产类别, 大小写不敏感
// 同名冲突时按 指数 > 股票 > 加密货币 的固定优先级归类
func (b *Bot) Resolve(name string) model.AssetClass {
	lower := strings.ToLower(name)

	if _, ok := b.store.Indexes[lower]; ok {
		return model.AssetIndex
	}
	if b.companies[lower] {
		return model.AssetStock
	}
	if b.coins[lower] {
		return model.AssetCrypto
	}
	return model.AssetUnknown
}
