package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

type Config struct {
	Port            string
	DatabaseURL     string
	JWTSecret       string
	TokenTTL        time.Duration
	DefaultPageSize int
	MaxPageSize     int
	AllowedOrigins  []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTL:        24 * time.Hour,
		DefaultPageSize: 50,
		MaxPageSize:     200,
		AllowedOrigins:  allowedOrigins(),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q", ttl)
		}
		cfg.TokenTTL = parsed
	}

	if size := os.Getenv("MAX_PAGE_SIZE"); size != "" {
		parsed, err := strconv.Atoi(size)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("invalid MAX_PAGE_SIZE %q", size)
		}
		cfg.MaxPageSize = parsed
	}

	if cfg.DefaultPageSize > cfg.MaxPageSize {
		cfg.DefaultPageSize = cfg.MaxPageSize
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func allowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowed := os.Getenv("ALLOWED_ORIGINS"); allowed != "" {
		for _, origin := range strings.Split(allowed, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
