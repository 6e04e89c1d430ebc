package chatbot

import (
	"strings"

	"github.com/tony19053000/chatbot/internal/dataset"
)

// Oracle 自然语言理解服务, 返回按约定格式组织的文本回复
type Oracle interface {
	GenerateContent(prompt string) (string, error)
}

// Bot 问答核心, 持有只读参考数据和NLU服务
type Bot struct {
	store  *dataset.Store
	oracle Oracle

	// 小写公司名/币名集合, 用于类别判定
	companies map[string]bool
	coins     map[string]bool
}

// New 创建问答核心, store 在进程生命周期内只读
func New(store *dataset.Store, oracle Oracle) *Bot {
	b := &Bot{
		store:     store,
		oracle:    oracle,
		companies: make(map[string]bool),
		coins:     make(map[string]bool),
	}
	for _, row := range store.Stocks {
		b.companies[strings.ToLower(row.CompanyName)] = true
	}
	for _, row := range store.Crypto {
		b.coins[strings.ToLower(row.CoinName)] = true
	}
	return b
}
