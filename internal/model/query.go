package model

// Action 查询动作
type Action string

const (
	ActionPredict Action = "predict"
	ActionCompare Action = "compare"
)

// Query 从大模型回复中解析出的用户意图
type Query struct {
	Action Action
	Assets []string
	Years  int
}

// StockPrediction 股票预测输出行
type StockPrediction struct {
	FutureDate  string  `json:"future_date"`
	CompanyName string  `json:"company_name"`
	Open        float64 `json:"open"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Close       float64 `json:"close"`
	Volume      float64 `json:"volume"`
}

// CryptoPrediction 加密货币预测输出行
type CryptoPrediction struct {
	FutureTimestamp string  `json:"future_timestamp"`
	CoinName        string  `json:"coin_name"`
	Price           float64 `json:"price"`
	Volume          float64 `json:"volume"`
}

// PredictionResult 单资产预测结果, Rows 为空时 Message 给出原因
type PredictionResult struct {
	Rows    []any
	Message string
}

// OK 是否查询成功
func (r PredictionResult) OK() bool {
	return r.Message == ""
}

// ComparisonResult 资产对比结果, 按资产名分别给出各自的预测
type ComparisonResult struct {
	Results map[string]PredictionResult
	Message string
}

// OK 是否对比成功
func (r ComparisonResult) OK() bool {
	return r.Message == ""
}

// Answer 一次问答的最终结果, 三个字段只有一个有效
type Answer struct {
	Prediction *PredictionResult
	Comparison *ComparisonResult
	Message    string
}
