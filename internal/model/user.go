package model

// User 注册用户
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// QueryRequest 自然语言查询请求
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
