package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort           string
	DataDir           string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	SessionTTL        time.Duration
	TelegramBotToken  string
	TelegramAdminChat string
	IPLookupURL       string
}

// Load reads environment variables and returns a populated Config.
// The admin password may be supplied as plaintext or as a bcrypt hash;
// at least one of the two is required, as is the signing secret.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DataDir:           getEnv("DATA_DIR", "data"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		SessionTTL:        getEnvDuration("SESSION_TTL_HOURS", 24) * time.Hour,
		TelegramBotToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAdminChat: getEnv("TELEGRAM_ADMIN_CHAT_ID", ""),
		IPLookupURL:       getEnv("IP_LOOKUP_URL", "https://api.ipify.org?format=json"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Fatal("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}
