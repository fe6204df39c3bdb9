package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=trivia port=5432 sslmode=disable"

var loadEnvOnce sync.Once

// AppConfig holds everything the API needs at boot.
type AppConfig struct {
	DatabaseURL    string
	Port           string
	AdminJWTSecret string
	StatsSchedule  string
	SeedCategories bool
}

func loadEnv() {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})
}

// Config returns the value of key, reading .env on first use.
func Config(key string) string {
	loadEnv()
	return os.Getenv(key)
}

func Load() AppConfig {
	return AppConfig{
		DatabaseURL:    getEnv("DATABASE_URL", defaultDSN),
		Port:           getEnv("PORT", "8080"),
		AdminJWTSecret: Config("ADMIN_JWT_SECRET"),
		StatsSchedule:  getEnvAllowEmpty("STATS_SCHEDULE", "*/5 * * * *"),
		SeedCategories: getBool("SEED_CATEGORIES", true),
	}
}

func getEnv(key, fallback string) string {
	if val := Config(key); val != "" {
		return val
	}
	return fallback
}

// getEnvAllowEmpty treats an explicitly empty variable as a value.
func getEnvAllowEmpty(key, fallback string) string {
	loadEnv()
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	val := Config(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		log.Printf("Warning: %s=%q is not a boolean, using %v", key, val, fallback)
		return fallback
	}
	return b
}
