package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config อ่านค่าจาก .env (ถ้ามี) หรือจาก environment โดยตรง
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Print("Error loading .env file")
	}
	return os.Getenv(key)
}

// ConfigOr คืนค่า fallback เมื่อไม่ได้ตั้งค่า key ไว้
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
