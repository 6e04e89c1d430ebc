package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tony19053000/chatbot/internal/cache"
	"github.com/tony19053000/chatbot/internal/chatbot"
	"github.com/tony19053000/chatbot/internal/model"
)

// askCacheTTL 问答缓存有效期
const askCacheTTL = 10 * time.Minute

// Ask 自然语言问答入口
func Ask(bot *chatbot.Bot) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.QueryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "请求参数错误: " + err.Error(),
			})
			return
		}

		key := askCacheKey(req.Query)
		var cached json.RawMessage
		if err := cache.Get(key, &cached); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}

		answer := bot.HandleUserQuery(req.Query)
		payload := answerPayload(answer)

		// 只缓存成功分发的结果, NLU报错和无法理解的回复不缓存
		if answer.Message == "" {
			cache.Set(key, payload, askCacheTTL)
		}

		c.JSON(http.StatusOK, payload)
	}
}

// answerPayload 把回答转换为与前端约定的JSON形状:
// 预测成功为行数组, 对比成功为 资产名->行数组或错误文本, 其余为 {"response": 提示}
func answerPayload(a model.Answer) any {
	switch {
	case a.Prediction != nil:
		if !a.Prediction.OK() {
			return gin.H{"response": a.Prediction.Message}
		}
		return a.Prediction.Rows
	case a.Comparison != nil:
		if !a.Comparison.OK() {
			return gin.H{"response": a.Comparison.Message}
		}
		out := make(gin.H, len(a.Comparison.Results))
		for name, r := range a.Comparison.Results {
			if r.OK() {
				out[name] = r.Rows
			} else {
				out[name] = r.Message
			}
		}
		return out
	default:
		return gin.H{"response": a.Message}
	}
}

func askCacheKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return "ask:" + hex.EncodeToString(sum[:])
}
