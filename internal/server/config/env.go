package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS              HTTP bind address (e.g., ":8080")
//	DATABASE_URL         PostgreSQL DSN
//	JWT_SECRET           HMAC secret key (required)
//	JWT_ALGORITHM        signing method name, default HS256
//	JWT_EXPIRATION_DAYS  token validity in days, default 7
//	BCRYPT_COST          bcrypt cost factor
//
// A .env file in the working directory is loaded first if present.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	config.EndpointAddrHTTP = getEnv("ADDRESS", config.EndpointAddrHTTP)
	config.DatabaseDSN = getEnv("DATABASE_URL", config.DatabaseDSN)
	config.SecretKey = getEnv("JWT_SECRET", config.SecretKey)
	config.JWTAlgorithm = getEnv("JWT_ALGORITHM", config.JWTAlgorithm)

	if days, ok := getEnvInt("JWT_EXPIRATION_DAYS"); ok {
		config.TokenValidityDuration = time.Duration(days) * 24 * time.Hour
	}
	if cost, ok := getEnvInt("BCRYPT_COST"); ok {
		config.BcryptCost = cost
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string) (int, bool) {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n, true
		}
	}
	return 0, false
}
