package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DatabaseURL string

	// Kafka
	KafkaBrokers string

	// API Configuration
	APIPort string
	APIHost string

	// Saasu
	SaasuAPIURL         string
	SaasuKey            string
	SaasuFileID         string
	SaasuBankAccount    string
	SaasuItemAccount    string
	SaasuServiceAccount string
	SaasuShippingID     string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		DatabaseURL:         getEnv("DATABASE_URL", "sqlite://saasusync.db"),
		KafkaBrokers:        getEnv("KAFKA_BROKERS", "localhost:9092"),
		APIPort:             getEnv("API_PORT", "8080"),
		APIHost:             getEnv("API_HOST", "0.0.0.0"),
		SaasuAPIURL:         getEnv("SAASU_API_URL", "https://api.saasu.com/"),
		SaasuKey:            getEnv("SAASU_KEY", ""),
		SaasuFileID:         getEnv("SAASU_FILE_ID", ""),
		SaasuBankAccount:    getEnv("SAASU_BANK_ACCOUNT", ""),
		SaasuItemAccount:    getEnv("SAASU_ITEM_ACCOUNT", ""),
		SaasuServiceAccount: getEnv("SAASU_SERVICE_ACCOUNT", ""),
		SaasuShippingID:     getEnv("SAASU_SHIPPING_ID", ""),
		Env:                 getEnv("ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}, nil
}

// SaasuValid reports whether every credential and account id the Saasu
// integration needs is present. When any is missing both sync flows are
// disabled rather than failing startup.
func (c *Config) SaasuValid() bool {
	return c.SaasuKey != "" &&
		c.SaasuFileID != "" &&
		c.SaasuBankAccount != "" &&
		c.SaasuItemAccount != "" &&
		c.SaasuServiceAccount != "" &&
		c.SaasuShippingID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
