package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string
	APP_ENV    string
	LOG_LEVEL  string

	CORS_ORIGIN []string

	STRIPE_SECRET_KEY string

	SMTP_HOST     string
	SMTP_PORT     string
	SMTP_FROM     string
	SMTP_PASSWORD string

	REDIS_URL         string
	NOTIFY_RETRY_SPEC string

	MESSAGE_PRIORITIES []string

	RATE_LIMIT_RPS   float64
	RATE_LIMIT_BURST int
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	APP_ENV = getEnv("APP_ENV", "development")
	LOG_LEVEL = getEnv("LOG_LEVEL", "info")

	CORS_ORIGIN = getList("CORS_ORIGIN", []string{"http://localhost:3000"})

	// optional integrations: empty disables them
	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	SMTP_FROM = getEnv("SMTP_FROM", "")
	SMTP_PASSWORD = getEnv("SMTP_PASSWORD", "")
	REDIS_URL = getEnv("REDIS_URL", "")
	NOTIFY_RETRY_SPEC = getEnv("NOTIFY_RETRY_SPEC", "@every 1m")

	MESSAGE_PRIORITIES = getList("MESSAGE_PRIORITIES", []string{"HIGH", "NEUTRAL", "LOW"})

	RATE_LIMIT_RPS = getFloat("RATE_LIMIT_RPS", 10)
	RATE_LIMIT_BURST = getInt("RATE_LIMIT_BURST", 20)
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		logrus.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getList splits a comma separated value, dropping blanks.
func getList(key string, fallback []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logrus.Warnf("Ignoring invalid %s=%q", key, raw)
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		logrus.Warnf("Ignoring invalid %s=%q", key, raw)
		return fallback
	}
	return v
}
