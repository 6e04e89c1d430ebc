package chatbot

import (
	"fmt"
	"strings"

	"github.com/tony19053000/chatbot/internal/model"
)

// Compare 对比两个资产, 仅支持同为股票或同为加密货币
// 类别匹配通过后, 单边查询失败记录在该资产自己的结果里
func (b *Bot) Compare(name1, name2 string, years int) model.ComparisonResult {
	isStock1 := b.companies[strings.ToLower(name1)]
	isStock2 := b.companies[strings.ToLower(name2)]
	isCrypto1 := b.coins[strings.ToLower(name1)]
	isCrypto2 := b.coins[strings.ToLower(name2)]

	if isStock1 && isStock2 {
		return model.ComparisonResult{Results: map[string]model.PredictionResult{
			name1: b.PredictStock(name1, years),
			name2: b.PredictStock(name2, years),
		}}
	}
	if isCrypto1 && isCrypto2 {
		return model.ComparisonResult{Results: map[string]model.PredictionResult{
			name1: b.PredictCrypto(name1, years),
			name2: b.PredictCrypto(name2, years),
		}}
	}

	return model.ComparisonResult{Message: fmt.Sprintf(
		"Cannot compare '%s' and '%s'. They must both be either companies or cryptocurrencies.",
		name1, name2)}
}
