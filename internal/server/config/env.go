package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over it.
//
// Recognized variables:
//
//	ADDRESS            HTTP bind address (e.g. ":3000")
//	DATABASE_DSN       PostgreSQL DSN
//	SECRET             JWT signing secret
//	TOKEN_TTL_MINUTES  token validity, minutes
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.Address = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenTTL = time.Duration(minutes) * time.Minute
		}
	}
}
