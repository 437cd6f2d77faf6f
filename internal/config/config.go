package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr              string
	MongoURI          string
	MongoDatabase     string
	ServiceCollection string
	CounterCollection string
	Timeout           time.Duration
	ServerLog         *log.Logger
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	JWTIssuer         string
	TokenTTL          time.Duration
	AllowedOrigins    []string
}

// Load reads .env (when present) and environment variables and returns a
// fully populated Config. Missing auth settings are a warning, not a fatal:
// the read-only API stays usable without them.
func Load() Config {
	_ = godotenv.Load()

	timeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("MONGO_CONNECT_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	tokenTTL := 2 * time.Hour
	if v := strings.TrimSpace(os.Getenv("AUTH_TOKEN_TTL")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			tokenTTL = parsed
		}
	}

	cfg := Config{
		Addr:              envOrDefault("HTTP_ADDR", ":4000"),
		MongoURI:          envOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:     envOrDefault("MONGO_DB", "service-finder"),
		ServiceCollection: envOrDefault("SERVICE_COLLECTION", "services"),
		CounterCollection: envOrDefault("COUNTER_COLLECTION", "counters"),
		Timeout:           timeout,
		ServerLog:         log.New(os.Stdout, "[service-finder-api] ", log.LstdFlags|log.Lshortfile),
		AdminEmail:        strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		JWTSecret:         strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:         envOrDefault("JWT_ISSUER", "ontario-service-finder"),
		TokenTTL:          tokenTTL,
		AllowedOrigins:    parseList("API_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:4173"}),
	}

	if cfg.JWTSecret == "" {
		cfg.ServerLog.Printf("JWT_SECRET not set. Admin login is disabled.")
	}
	if cfg.AdminEmail == "" || (cfg.AdminPassword == "" && cfg.AdminPasswordHash == "") {
		cfg.ServerLog.Printf("Admin credentials not set. Admin login is disabled.")
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
