package chatbot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tony19053000/chatbot/internal/model"
)

func TestPredictIndexRowCount(t *testing.T) {
	bot := testBot(nil)

	tests := []struct {
		name  string
		years int
		want  int
	}{
		{"nifty 50", 2, 20},   // 25行中取最近20行
		{"NIFTY 50", 10, 25},  // 超出表长时全量返回
		{"s&p 500", 1, 10},
		{"sensex", 1, 8},
	}
	for _, tt := range tests {
		result := bot.PredictIndex(tt.name, tt.years)
		require.True(t, result.OK(), "name=%q: %s", tt.name, result.Message)
		assert.Len(t, result.Rows, tt.want, "name=%q", tt.name)
	}
}

func TestPredictIndexRenamesFirstColumn(t *testing.T) {
	bot := testBot(nil)

	result := bot.PredictIndex("s&p 500", 1)
	require.True(t, result.OK())

	row, ok := result.Rows[0].(map[string]string)
	require.True(t, ok)
	assert.Contains(t, row, "future_date")
	assert.NotContains(t, row, "DATE")
	assert.Contains(t, row, "Open")
	assert.Contains(t, row, "Close")
}

func TestPredictIndexNotFound(t *testing.T) {
	bot := testBot(nil)

	result := bot.PredictIndex("dow jones", 5)
	assert.Equal(t, "No data found for index 'dow jones'.", result.Message)
	assert.Empty(t, result.Rows)
}

func TestPredictStockTail(t *testing.T) {
	bot := testBot(nil)

	result := bot.PredictStock("Apple", 1)
	require.True(t, result.OK())
	require.Len(t, result.Rows, 10)

	first := result.Rows[0].(model.StockPrediction)
	last := result.Rows[len(result.Rows)-1].(model.StockPrediction)
	assert.Equal(t, "Apple", first.CompanyName)
	// 时间升序, 且确实是最近的行
	assert.Less(t, first.FutureDate, last.FutureDate)
	assert.Equal(t, 100+119.0, last.Open)
}

func TestPredictStockColumns(t *testing.T) {
	bot := testBot(nil)

	result := bot.PredictStock("infosys", 1)
	require.True(t, result.OK())

	data, err := json.Marshal(result.Rows[0])
	require.NoError(t, err)

	var row map[string]any
	require.NoError(t, json.Unmarshal(data, &row))

	want := []string{"future_date", "company_name", "open", "high", "low", "close", "volume"}
	assert.Len(t, row, len(want))
	for _, col := range want {
		assert.Contains(t, row, col)
	}
}

func TestPredictStockAllRowsWhenShort(t *testing.T) {
	bot := testBot(nil)

	// Infosys 只有30行, years*10=100 时全量返回
	result := bot.PredictStock("Infosys", 10)
	require.True(t, result.OK())
	assert.Len(t, result.Rows, 30)
}

func TestPredictStockNotFound(t *testing.T) {
	bot := testBot(nil)

	result := bot.PredictStock("Tesla", 5)
	assert.Equal(t, "No data found for company 'Tesla'.", result.Message)
}

func TestPredictCryptoExactMatch(t *testing.T) {
	bot := testBot(nil)

	result := bot.PredictCrypto("bitcoin", 3)
	require.True(t, result.OK())
	require.Len(t, result.Rows, 30)

	// 精确匹配不应混入 Bitcoin Cash 的行
	for _, r := range result.Rows {
		assert.Equal(t, "Bitcoin", r.(model.CryptoPrediction).CoinName)
	}
}

func TestPredictCryptoFuzzyFallback(t *testing.T) {
	bot := testBot(nil)

	// 没有叫 Cash 的币, 但 Bitcoin Cash 包含该子串
	result := bot.PredictCrypto("Cash", 1)
	require.True(t, result.OK())
	require.Len(t, result.Rows, 10)
	for _, r := range result.Rows {
		assert.Equal(t, "Bitcoin Cash", r.(model.CryptoPrediction).CoinName)
	}
}

func TestPredictCryptoColumns(t *testing.T) {
	bot := testBot(nil)

	result := bot.PredictCrypto("Dogecoin", 1)
	require.True(t, result.OK())

	data, err := json.Marshal(result.Rows[0])
	require.NoError(t, err)

	var row map[string]any
	require.NoError(t, json.Unmarshal(data, &row))

	want := []string{"future_timestamp", "coin_name", "price", "volume"}
	assert.Len(t, row, len(want))
	for _, col := range want {
		assert.Contains(t, row, col)
	}
}

func TestPredictCryptoNotFound(t *testing.T) {
	bot := testBot(nil)

	result := bot.PredictCrypto("Monero", 5)
	assert.Equal(t, "No data found for coin 'Monero'.", result.Message)
}

func TestPredictAssetDispatch(t *testing.T) {
	bot := testBot(nil)

	assert.True(t, bot.PredictAsset("sensex", 1).OK())
	assert.True(t, bot.PredictAsset("Apple", 1).OK())
	assert.True(t, bot.PredictAsset("Bitcoin", 1).OK())

	result := bot.PredictAsset("Gold", 1)
	assert.Equal(t, "Asset 'Gold' not recognized.", result.Message)
}
