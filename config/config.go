package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr   string
	DataPath   string
	DBPath     string
	AdminToken string
}

func Load() *Config {
	// Load .env file (if it exists)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		HTTPAddr:   getEnv("HTTP_ADDR", ":8080"),
		DataPath:   getEnv("DATA_PATH", "HRDataset_v14.csv"),
		DBPath:     getEnv("DB_PATH", "hr.db"),
		AdminToken: os.Getenv("ADMIN_TOKEN"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsAdmin reports whether the given token authorizes dataset uploads.
// An empty ADMIN_TOKEN leaves uploads open.
func (c *Config) IsAdmin(token string) bool {
	if c.AdminToken == "" {
		return true
	}
	return token == c.AdminToken
}
