package chatbot

import (
	"fmt"
	"time"

	"github.com/tony19053000/chatbot/internal/dataset"
	"github.com/tony19053000/chatbot/internal/model"
)

// fakeOracle 测试用NLU桩, 返回固定回复或错误
type fakeOracle struct {
	reply string
	err   error

	lastPrompt string
}

func (f *fakeOracle) GenerateContent(prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func stockRows(company string, n int) []model.StockRow {
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]model.StockRow, 0, n)
	for i := 0; i < n; i++ {
		price := 100 + float64(i)
		rows = append(rows, model.StockRow{
			Date:        base.AddDate(0, 0, i).Format("2006-01-02"),
			CompanyName: company,
			Open:        price,
			High:        price + 2,
			Low:         price - 2,
			Close:       price + 1,
			Volume:      1000 + float64(i),
		})
	}
	return rows
}

func cryptoRows(coin string, n int) []model.CryptoRow {
	base := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]model.CryptoRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, model.CryptoRow{
			Timestamp: base.AddDate(0, 0, i).Format("2006-01-02 15:04:05"),
			CoinName:  coin,
			Price:     500 + float64(i),
			Volume:    10 + float64(i),
		})
	}
	return rows
}

func indexTable(dateCol string, n int) model.IndexTable {
	base := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	table := model.IndexTable{Columns: []string{dateCol, "Open", "Close"}}
	for i := 0; i < n; i++ {
		table.Rows = append(table.Rows, []string{
			base.AddDate(0, 0, i).Format("2006-01-02"),
			fmt.Sprintf("%d", 5000+i),
			fmt.Sprintf("%d", 5010+i),
		})
	}
	return table
}

func testStore() *dataset.Store {
	var stocks []model.StockRow
	stocks = append(stocks, stockRows("Infosys", 30)...)
	stocks = append(stocks, stockRows("Apple", 120)...)
	stocks = append(stocks, stockRows("Microsoft", 60)...)
	// 与指数同名的公司, 用于归类优先级
	stocks = append(stocks, stockRows("Sensex", 5)...)

	var crypto []model.CryptoRow
	crypto = append(crypto, cryptoRows("Bitcoin", 120)...)
	crypto = append(crypto, cryptoRows("Bitcoin Cash", 30)...)
	crypto = append(crypto, cryptoRows("Dogecoin", 15)...)

	return &dataset.Store{
		Stocks: stocks,
		Indexes: map[string]model.IndexTable{
			"nifty 50": indexTable("Date", 25),
			"s&p 500":  indexTable("DATE", 12),
			"sensex":   indexTable("Date", 8),
		},
		Crypto: crypto,
	}
}

func testBot(oracle Oracle) *Bot {
	return New(testStore(), oracle)
}
