package model

// AssetClass 资产类别
type AssetClass int

const (
	AssetUnknown AssetClass = iota
	AssetIndex
	AssetStock
	AssetCrypto
)

// String 返回类别名称
func (c AssetClass) String() string {
	switch c {
	case AssetIndex:
		return "index"
	case AssetStock:
		return "stock"
	case AssetCrypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// StockRow 股票历史行情行, 按时间升序存放
type StockRow struct {
	Date        string
	CompanyName string
	Open        float64
	High        float64
	Low         float64
	Close       float64
	Volume      float64
}

// CryptoRow 加密货币历史行情行, 按时间升序存放
type CryptoRow struct {
	Timestamp string
	CoinName  string
	Price     float64
	Volume    float64
}

// IndexTable 指数历史表, 第一列为日期列, 列名随指数不同
type IndexTable struct {
	Columns []string
	Rows    [][]string
}
