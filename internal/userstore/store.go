package userstore

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/tony19053000/chatbot/internal/model"
)

var db *sql.DB

// Init 打开用户数据库并建表
func Init(path string) error {
	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("打开用户数据库失败: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS users (
		email         TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("初始化用户表失败: %v", err)
	}
	return nil
}

// Register 注册用户, 邮箱已存在时返回 false
func Register(name, email, password string) (bool, error) {
	if db == nil {
		return false, fmt.Errorf("用户数据库未初始化")
	}

	res, err := db.Exec(`INSERT OR IGNORE INTO users(email, name, password_hash) VALUES(?, ?, ?)`,
		email, name, hashPassword(password))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Authenticate 校验邮箱和密码, 成功时返回用户信息
func Authenticate(email, password string) (*model.User, bool) {
	if db == nil {
		return nil, false
	}

	var name, hash string
	err := db.QueryRow(`SELECT name, password_hash FROM users WHERE email = ?`, email).Scan(&name, &hash)
	if err != nil {
		return nil, false
	}
	if hash != hashPassword(password) {
		return nil, false
	}
	return &model.User{Name: name, Email: email}, true
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Close 关闭用户数据库
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
