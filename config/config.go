package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config đọc biến môi trường từ .env (nếu có)
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		// không có .env thì dùng biến môi trường hệ thống
	}
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	v := Config(key)
	if v == "" {
		return fallback
	}
	return v
}

func ConfigDuration(key string, fallback time.Duration) time.Duration {
	v := Config(key)
	if v == "" {
		return fallback
	}
	if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
		return time.Duration(sec) * time.Second
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	return fallback
}
