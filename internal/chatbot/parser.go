package chatbot

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tony19053000/chatbot/internal/model"
)

// 大模型回复约定为三行: Action / Assets / Years
// 任何一行缺失或无法解析时取默认值
var (
	actionPattern = regexp.MustCompile(`(?i)Action:\s*(\w+)`)
	assetsPattern = regexp.MustCompile(`(?i)Assets:\s*\[(.*?)\]`)
	yearsPattern  = regexp.MustCompile(`(?i)Years:\s*\[?(\d+)\]?`)
)

// defaultYears 未提及年数时的默认值
const defaultYears = 10

// parseReply 从大模型回复中提取动作/资产列表/年数
func parseReply(reply string) model.Query {
	q := model.Query{Action: model.ActionPredict, Years: defaultYears}

	if m := actionPattern.FindStringSubmatch(reply); m != nil {
		q.Action = model.Action(strings.ToLower(m[1]))
	}

	if m := assetsPattern.FindStringSubmatch(reply); m != nil {
		for _, part := range strings.Split(m[1], ",") {
			q.Assets = append(q.Assets, strings.Trim(part, " \t'\""))
		}
	}

	if m := yearsPattern.FindStringSubmatch(reply); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			q.Years = n
		}
	}

	return q
}
