package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port       string
	AppBaseURL string
	APIBaseURL string

	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Telegram
	TelegramBotToken string
	BotAPIKey        string

	// Auth links
	AuthLinkTTL time.Duration

	// Admin session JWT
	JWTSecret        string
	JWTExpirationDur time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port:       getEnv("PORT", "8080"),
		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:8080"),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "teatally"),
		DBPassword:  getEnv("DB_PASSWORD", "teatally"),
		DBName:      getEnv("DB_NAME", "teatally"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		// Telegram
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		BotAPIKey:        getEnv("BOT_API_KEY", "dev-bot-key"),

		// Admin session JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
	}

	// Parse auth link time-to-live
	ttlStr := getEnv("AUTH_LINK_TTL", "30m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("Warning: invalid AUTH_LINK_TTL value '%s', falling back to 30m\n", ttlStr)
		ttl = 30 * time.Minute
	}
	config.AuthLinkTTL = ttl

	// Parse admin JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "2h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 2h\n", expStr)
		expDur = 2 * time.Hour
	}
	config.JWTExpirationDur = expDur

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
