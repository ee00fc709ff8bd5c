package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Config holds the runtime configuration read from the environment.
//
// cmd/api autoloads a .env file before Load is called, so local development
// can keep everything in one file while deployments set real variables.
type Config struct {
	Port string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	Tables Tables

	JWTSecret string
	JWTIssuer string

	CORSAllowedOrigins []string
	RateLimitPerSec    float64
	RateLimitBurst     int
	HealthScoreTTL     time.Duration

	GeminiAPIKey string
	GeminiModel  string
}

// Tables names every DynamoDB table the service touches.
type Tables struct {
	Machines        string
	Orders          string
	Transfers       string
	Users           string
	HealthScoreLogs string
	RentalRequests  string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getenvDefault("PORT", "8080"),
		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		Tables: Tables{
			Machines:        getenvDefault("MACHINES_TABLE", "machines"),
			Orders:          getenvDefault("ORDERS_TABLE", "orders"),
			Transfers:       getenvDefault("TRANSFERS_TABLE", "transfers"),
			Users:           getenvDefault("USERS_TABLE", "users"),
			HealthScoreLogs: getenvDefault("HEALTH_SCORE_LOGS_TABLE", "health_score_logs"),
			RentalRequests:  getenvDefault("RENTAL_REQUESTS_TABLE", "requests"),
		},
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTIssuer:          os.Getenv("JWT_ISSUER"),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		RateLimitPerSec:    getenvFloat("RATE_LIMIT_PER_SEC", 10),
		RateLimitBurst:     getenvInt("RATE_LIMIT_BURST", 20),
		HealthScoreTTL:     time.Duration(getenvInt("HEALTH_SCORE_CACHE_TTL_SECONDS", 30)) * time.Second,
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getenvDefault("GEMINI_MODEL", "gemini-2.5-flash-lite"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required configuration values are set.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
