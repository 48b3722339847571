package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// OLX API
	APIBaseURL string
	Username   string
	Password   string

	// Supplier feeds
	ProductsFeedURL string
	PricesFeedURL   string

	// Identity map
	SKUMapPath string

	// Sync journal; empty disables it
	DatabaseURL string

	// Outcome events; empty disables them
	KafkaBrokers string

	// Environment
	Env      string
	LogLevel string

	Rules ListingRules
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		APIBaseURL:      getEnv("OLX_API_URL", "https://api.olx.ba"),
		Username:        getEnv("OLX_USERNAME", ""),
		Password:        getEnv("OLX_PASSWORD", ""),
		ProductsFeedURL: getEnv("TECHNOBIT_XML_PRODUCTS", ""),
		PricesFeedURL:   getEnv("TECHNOBIT_XML_PRICES", ""),
		SKUMapPath:      getEnv("SKU_MAP_PATH", "sku_map.log"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Rules:           DefaultListingRules(),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
