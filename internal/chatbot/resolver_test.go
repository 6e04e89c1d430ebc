package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tony19053000/chatbot/internal/model"
)

func TestResolve(t *testing.T) {
	bot := testBot(nil)

	tests := []struct {
		name string
		want model.AssetClass
	}{
		{"nifty 50", model.AssetIndex},
		{"NIFTY 50", model.AssetIndex},
		{"s&p 500", model.AssetIndex},
		{"apple", model.AssetStock},
		{"MICROSOFT", model.AssetStock},
		{"Bitcoin", model.AssetCrypto},
		{"dogecoin", model.AssetCrypto},
		{"Gold", model.AssetUnknown},
		{"", model.AssetUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bot.Resolve(tt.name), "name=%q", tt.name)
	}
}

func TestResolvePrecedenceIndexOverStock(t *testing.T) {
	bot := testBot(nil)

	// Sensex 既是指数又是公司名, 必须归类为指数
	assert.Equal(t, model.AssetIndex, bot.Resolve("Sensex"))
	assert.Equal(t, model.AssetIndex, bot.Resolve("SENSEX"))
}
