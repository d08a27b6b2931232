package config

import (
	"fmt"
	"os"
)

const (
	DBDriverMemory   = "memory"
	DBDriverPostgres = "postgres"
	DBDriverOracle   = "oracle"
)

type Config struct {
	ServerHost string
	ServerPort string
	DBDriver   string
	DBDSN      string
	JWTSecret  string
	LogLevel   string
}

func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	driver := getEnvOrDefault("DB_DRIVER", DBDriverMemory)
	switch driver {
	case DBDriverMemory, DBDriverPostgres, DBDriverOracle:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}

	dsn := os.Getenv("DB_DSN")
	if driver != DBDriverMemory && dsn == "" {
		return nil, fmt.Errorf("DB_DSN environment variable is required for %s driver", driver)
	}

	return &Config{
		ServerHost: getEnvOrDefault("SERVER_HOST", "localhost"),
		ServerPort: getEnvOrDefault("SERVER_PORT", "8080"),
		DBDriver:   driver,
		DBDSN:      dsn,
		JWTSecret:  secret,
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
