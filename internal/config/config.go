package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
//
// JWTSecret signs access tokens (HS256); DatabasePath points at the
// SQLite file. Both are required and the process refuses to start
// without them.
type Config struct {
	ServerPort     int
	DatabasePath   string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
}

// Load loads configuration from the environment, reading an optional
// .env file first. It returns an error for any missing required key.
func Load() (*Config, error) {
	// Best effort: a missing .env just means plain env vars.
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		return nil, fmt.Errorf("DATABASE_PATH must be set")
	}

	// Tokens are HMAC-signed; only HS256 is supported.
	if alg := getEnv("JWT_ALGORITHM", "HS256"); alg != "HS256" {
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM %q", alg)
	}

	ttlStr := getEnv("TOKEN_TTL_MINUTES", "30")
	ttlMinutes, err := strconv.Atoi(ttlStr)
	if err != nil || ttlMinutes <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL_MINUTES %q", ttlStr)
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: dbPath,
		JWTSecret:    secret,
		TokenTTL:     time.Duration(ttlMinutes) * time.Minute,
		AllowedOrigins: []string{
			getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
			"http://127.0.0.1:5173",
			"http://localhost:3000",
		},
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
