package main

import (
	"bufio"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tony19053000/chatbot/internal/cache"
	"github.com/tony19053000/chatbot/internal/chatbot"
	"github.com/tony19053000/chatbot/internal/dataset"
	"github.com/tony19053000/chatbot/internal/handler"
	"github.com/tony19053000/chatbot/internal/llm"
	"github.com/tony19053000/chatbot/internal/userstore"
)

func init() {
	// 手动加载 .env 文件
	file, err := os.Open(".env")
	if err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			os.Setenv(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		}
	}
}

func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	store, err := dataset.Load(dataDir)
	if err != nil {
		log.Fatalf("加载参考数据失败: %v", err)
	}

	userDB := os.Getenv("USER_DB_PATH")
	if userDB == "" {
		userDB = "./users.db"
	}
	if err := userstore.Init(userDB); err != nil {
		log.Fatalf("初始化用户数据库失败: %v", err)
	}
	defer userstore.Close()

	if err := cache.InitRedis(); err != nil {
		log.Printf("Redis不可用, 问答缓存已关闭: %v", err)
	}
	defer cache.Close()

	bot := chatbot.New(store, llm.NewClient())

	r := gin.Default()

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	// 注册路由
	r.POST("/ask", handler.Ask(bot))
	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)

	// 页面路由
	r.GET("/", handler.ServePage("index.html"))
	r.GET("/login", handler.ServePage("login.html"))
	r.GET("/signup", handler.ServePage("signup.html"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("服务启动在端口 %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}
