package chatbot

import (
	"fmt"
	"strings"

	"github.com/tony19053000/chatbot/internal/model"
)

// rowsPerYear 每个预测年对应的历史行数
// 沿用"行数近似预测区间"的口径, 不做日历切片
const rowsPerYear = 10

// PredictAsset 按资产类别分发预测查询
func (b *Bot) PredictAsset(name string, years int) model.PredictionResult {
	switch b.Resolve(name) {
	case model.AssetIndex:
		return b.PredictIndex(name, years)
	case model.AssetStock:
		return b.PredictStock(name, years)
	case model.AssetCrypto:
		return b.PredictCrypto(name, years)
	default:
		return model.PredictionResult{Message: fmt.Sprintf("Asset '%s' not recognized.", name)}
	}
}

// PredictStock 返回公司最近 years*10 行行情
func (b *Bot) PredictStock(company string, years int) model.PredictionResult {
	var filtered []model.StockRow
	for _, row := range b.store.Stocks {
		if strings.EqualFold(row.CompanyName, company) {
			filtered = append(filtered, row)
		}
	}
	if len(filtered) == 0 {
		return model.PredictionResult{Message: fmt.Sprintf("No data found for company '%s'.", company)}
	}

	filtered = tail(filtered, years*rowsPerYear)
	rows := make([]any, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, model.StockPrediction{
			FutureDate:  r.Date,
			CompanyName: r.CompanyName,
			Open:        r.Open,
			High:        r.High,
			Low:         r.Low,
			Close:       r.Close,
			Volume:      r.Volume,
		})
	}
	return model.PredictionResult{Rows: rows}
}

// PredictIndex 返回指数最近 years*10 行, 第一列重命名为 future_date
func (b *Bot) PredictIndex(name string, years int) model.PredictionResult {
	table, ok := b.store.Indexes[strings.ToLower(name)]
	if !ok {
		return model.PredictionResult{Message: fmt.Sprintf("No data found for index '%s'.", name)}
	}

	columns := make([]string, len(table.Columns))
	copy(columns, table.Columns)
	columns[0] = "future_date"

	recent := tail(table.Rows, years*rowsPerYear)
	rows := make([]any, 0, len(recent))
	for _, rec := range recent {
		m := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				m[col] = rec[i]
			}
		}
		rows = append(rows, m)
	}
	return model.PredictionResult{Rows: rows}
}

// PredictCrypto 返回币种最近 years*10 行行情
// 精确匹配为空时退化为子串匹配
func (b *Bot) PredictCrypto(coin string, years int) model.PredictionResult {
	lower := strings.ToLower(coin)

	var filtered []model.CryptoRow
	for _, row := range b.store.Crypto {
		if strings.ToLower(row.CoinName) == lower {
			filtered = append(filtered, row)
		}
	}
	if len(filtered) == 0 {
		for _, row := range b.store.Crypto {
			if strings.Contains(strings.ToLower(row.CoinName), lower) {
				filtered = append(filtered, row)
			}
		}
	}
	if len(filtered) == 0 {
		return model.PredictionResult{Message: fmt.Sprintf("No data found for coin '%s'.", coin)}
	}

	filtered = tail(filtered, years*rowsPerYear)
	rows := make([]any, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, model.CryptoPrediction{
			FutureTimestamp: r.Timestamp,
			CoinName:        r.CoinName,
			Price:           r.Price,
			Volume:          r.Volume,
		})
	}
	return model.PredictionResult{Rows: rows}
}

// tail 取最近 n 行, 不足 n 行时全量返回
func tail[T any](rows []T, n int) []T {
	if n >= len(rows) {
		return rows
	}
	return rows[len(rows)-n:]
}
