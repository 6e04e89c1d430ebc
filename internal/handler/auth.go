package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tony19053000/chatbot/internal/model"
	"github.com/tony19053000/chatbot/internal/userstore"
)

// Register 用户注册
func Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请求参数错误: " + err.Error(),
		})
		return
	}

	ok, err := userstore.Register(req.Name, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"error": "Email already registered.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully!",
	})
}

// Login 用户登录
func Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请求参数错误: " + err.Error(),
		})
		return
	}

	user, ok := userstore.Authenticate(req.Email, req.Password)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"error": "Invalid email or password",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"user":    user,
	})
}
