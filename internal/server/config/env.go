package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first, if present; real environment
// variables take precedence over the file.
//
// Supported variables:
//
//	ADDRESS               HTTP bind address (e.g., ":3000")
//	DATABASE_DSN          PostgreSQL DSN
//	JWT_SECRET            JWT HMAC secret key
//	TOKEN_VALIDITY        token lifetime, Go duration syntax (e.g., "1h")
//	BCRYPT_COST           bcrypt work factor
//	GIN_MODE              gin run mode
//	CORS_ALLOWED_ORIGINS  comma-separated allowed origins
//	REQUEST_TIMEOUT       per-request work deadline, Go duration syntax
func parseEnv(config *Config) {
	// missing .env file is fine, variables may come from the real environment
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		config.GinMode = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		config.CORSAllowedOrigins = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.RequestTimeout = d
		}
	}
}
