package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Defaults match the values the service has always shipped with, so a bare
// process still comes up for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB
	MongoURI     string
	MongoDB      string
	MongoTimeout time.Duration
	UsersColl    string
	ProductsColl string

	// JWT
	JWTSecret string
	AccessTTL time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated; empty means allow all
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "fullstack-game-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "3000"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURI:     getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getenv("MONGO_DB", "fullstack_game"),
		MongoTimeout: getdur("MONGO_TIMEOUT", 5*time.Second),
		UsersColl:    getenv("MONGO_USERS_COLLECTION", "usuarios"),
		ProductsColl: getenv("MONGO_PRODUCTS_COLLECTION", "productos"),

		JWTSecret: getenv("JWT_SECRET", "supersecreta123"),
		AccessTTL: getdur("JWT_ACCESS_TTL", time.Hour),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
