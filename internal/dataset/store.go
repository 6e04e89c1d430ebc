package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tony19053000/chatbot/internal/model"
)

const (
	stockFile  = "stock_market_data_25y_full.csv"
	cryptoFile = "reshaped_crypto_data.csv"
)

// indexFiles 支持的指数及其数据文件, key 为小写指数名
var indexFiles = map[string]string{
	"nifty 50": "NIFTY_50.csv",
	"s&p 500":  "S&P_500.csv",
	"sensex":   "SENSEX.csv",
}

// Store 只读参考数据, 进程启动时加载一次, 之后任何组件不得修改
type Store struct {
	Stocks  []model.StockRow
	Indexes map[string]model.IndexTable
	Crypto  []model.CryptoRow
}

// Load 从目录加载全部CSV数据, 任一文件缺失或格式错误即失败
func Load(dir string) (*Store, error) {
	s := &Store{Indexes: make(map[string]model.IndexTable)}

	stocks, err := loadStocks(filepath.Join(dir, stockFile))
	if err != nil {
		return nil, fmt.Errorf("加载股票数据失败: %v", err)
	}
	s.Stocks = stocks

	for name, file := range indexFiles {
		table, err := loadIndex(filepath.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("加载指数 %s 数据失败: %v", name, err)
		}
		s.Indexes[name] = table
	}

	crypto, err := loadCrypto(filepath.Join(dir, cryptoFile))
	if err != nil {
		return nil, fmt.Errorf("加载加密货币数据失败: %v", err)
	}
	s.Crypto = crypto

	fmt.Printf("[数据] 加载完成: 股票 %d 行, 指数 %d 个, 加密货币 %d 行\n",
		len(s.Stocks), len(s.Indexes), len(s.Crypto))
	return s, nil
}

// loadStocks 加载股票行情表
func loadStocks(path string) ([]model.StockRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	col, err := columnIndex(records[0], "date", "company_name", "open", "high", "low", "close", "volume")
	if err != nil {
		return nil, err
	}

	rows := make([]model.StockRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := model.StockRow{
			Date:        rec[col["date"]],
			CompanyName: rec[col["company_name"]],
		}
		for name, dst := range map[string]*float64{
			"open": &row.Open, "high": &row.High, "low": &row.Low,
			"close": &row.Close, "volume": &row.Volume,
		} {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[col[name]]), 64)
			if err != nil {
				return nil, fmt.Errorf("第 %d 行 %s 列不是数字: %v", i+2, name, err)
			}
			*dst = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// loadIndex 加载指数表, 保留原始列名和取值
func loadIndex(path string) (model.IndexTable, error) {
	records, err := readCSV(path)
	if err != nil {
		return model.IndexTable{}, err
	}

	columns := make([]string, len(records[0]))
	for i, h := range records[0] {
		columns[i] = strings.TrimSpace(h)
	}
	return model.IndexTable{Columns: columns, Rows: records[1:]}, nil
}

// loadCrypto 加载加密货币行情表
func loadCrypto(path string) ([]model.CryptoRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	col, err := columnIndex(records[0], "timestamp", "coin_name", "price", "volume")
	if err != nil {
		return nil, err
	}

	rows := make([]model.CryptoRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		price, err := strconv.ParseFloat(strings.TrimSpace(rec[col["price"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("第 %d 行 price 列不是数字: %v", i+2, err)
		}
		volume, err := strconv.ParseFloat(strings.TrimSpace(rec[col["volume"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("第 %d 行 volume 列不是数字: %v", i+2, err)
		}
		rows = append(rows, model.CryptoRow{
			Timestamp: rec[col["timestamp"]],
			CoinName:  rec[col["coin_name"]],
			Price:     price,
			Volume:    volume,
		})
	}
	return rows, nil
}

// readCSV 读取整个CSV文件, 要求至少有表头和一行数据
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("解析CSV失败: %v", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("文件缺少数据: %s", path)
	}
	return records, nil
}

// columnIndex 建立列名到下标的映射并校验必需列
func columnIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("缺少列: %s", name)
		}
	}
	return idx, nil
}
