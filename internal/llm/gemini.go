package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// GenerateRequest Gemini 生成请求
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Content 消息内容
type Content struct {
	Parts []Part `json:"parts"`
}

// Part 文本片段
type Part struct {
	Text string `json:"text"`
}

// GenerateResponse Gemini 生成响应
type GenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client Gemini 客户端
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient 创建 Gemini 客户端, 配置取自环境变量
func NewClient() *Client {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-pro"
	}
	return &Client{
		apiKey:     os.Getenv("GEMINI_API_KEY"),
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateContent 调用 Gemini 生成文本回复
func (c *Client) GenerateContent(prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY 未配置")
	}

	req := GenerateRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	}
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("序列化请求失败: %v", err)
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		c.model, c.apiKey)
	httpReq, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("请求失败: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取响应失败: %v", err)
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("解析响应失败: %v", err)
	}

	if genResp.Error.Message != "" {
		return "", fmt.Errorf("API返回错误: %s", genResp.Error.Message)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("API返回空结果")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
