package chatbot

import (
	"fmt"
	"strings"

	"github.com/tony19053000/chatbot/internal/model"
)

// promptTemplate 意图提取提示词, %s 处嵌入原始问题
const promptTemplate = `You are a finance chatbot. Extract from the user query:
1. If it's a 'predict' or 'compare' task
2. The asset names involved (companies, indexes like 'S&P 500', or coins like 'Bitcoin')
3. The number of years (default to 10 if not mentioned)

User Query: "%s"

Give output in this format:
Action: predict / compare
Assets: [asset1, asset2 (if compare)]
Years: [number]`

// HandleUserQuery 处理一次自然语言查询
// NLU调用或解析失败不向外抛错, 一律转为文本提示返回
func (b *Bot) HandleUserQuery(query string) model.Answer {
	reply, err := b.oracle.GenerateContent(fmt.Sprintf(promptTemplate, query))
	if err != nil {
		return model.Answer{Message: fmt.Sprintf("Error processing query: %v", err)}
	}

	q := parseReply(strings.TrimSpace(reply))

	switch {
	case q.Action == model.ActionCompare && len(q.Assets) == 2:
		result := b.Compare(q.Assets[0], q.Assets[1], q.Years)
		return model.Answer{Comparison: &result}
	case q.Action == model.ActionPredict && len(q.Assets) == 1:
		result := b.PredictAsset(q.Assets[0], q.Years)
		return model.Answer{Prediction: &result}
	default:
		return model.Answer{Message: "Sorry, I couldn't understand your request clearly."}
	}
}
