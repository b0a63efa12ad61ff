package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	StorageBackend string // "database" or "redis"
	DBDriver       string // "sqlite" or "mysql"
	DBDSN          string
	RedisURL       string
	JWTSecret      string
	OTPAcceptCode  string
	SyncInterval   time.Duration
	ToastDuration  time.Duration
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		StorageBackend: getEnv("STORAGE_BACKEND", "database"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBDSN:          getEnv("DB_DSN", "qrdining.db"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		OTPAcceptCode:  getEnv("OTP_ACCEPT_CODE", "1234"),
		SyncInterval:   getEnvAsDuration("SYNC_INTERVAL_MS", 500) * time.Millisecond,
		ToastDuration:  getEnvAsDuration("TOAST_DURATION_MS", 3000) * time.Millisecond,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return time.Duration(intValue)
		}
	}
	return time.Duration(defaultValue)
}
