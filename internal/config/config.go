package config

import (
	"os"
	"time"
)

// Config collects all runtime settings read from the environment. Every field
// has a development fallback so a bare `go run` works against a local
// Postgres; production deployments are expected to set the variables
// explicitly, JWT_SECRET above all.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret   []byte
	JWTIssuer   string
	JWTAudience string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration

	OMDbURL    string
	OMDbAPIKey string

	GeminiURL    string
	GeminiAPIKey string

	RedisAddr     string
	RedisPassword string
}

// Load builds a Config from environment variables, applying defaults for
// anything unset.
func Load() Config {
	return Config{
		Port: getenv("PORT", "8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "watched"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		JWTSecret:   []byte(getenv("JWT_SECRET", "default_super_secret_key")),
		JWTIssuer:   getenv("JWT_ISSUER", "watched-api"),
		JWTAudience: getenv("JWT_AUDIENCE", "watched-app"),
		AccessTTL:   getdur("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTTL:  getdur("REFRESH_TOKEN_TTL", time.Hour),

		OMDbURL:    getenv("OMDB_URL", "https://www.omdbapi.com"),
		OMDbAPIKey: os.Getenv("OMDB_API_KEY"),

		GeminiURL:    getenv("GEMINI_URL", "https://generativelanguage.googleapis.com/v1/models/gemini-1.5-pro:generateContent"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
}

// DSN assembles the Postgres connection string.
func (c Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort +
		"/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
