package handler

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// ServePage 返回前端页面目录下的指定HTML页面
func ServePage(name string) gin.HandlerFunc {
	dir := os.Getenv("WEB_DIR")
	if dir == "" {
		dir = "./web"
	}
	return func(c *gin.Context) {
		c.File(filepath.Join(dir, name))
	}
}
