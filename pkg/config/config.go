package config

import (
	"os"
	"strings"
)

type ServerConfig struct {
	Address        string
	AllowedOrigins []string
}

type Config struct {
	Server ServerConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func New() *Config {
	origins := strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Server: ServerConfig{
			Address:        getEnv("SERVER_ADDRESS", ":8080"),
			AllowedOrigins: origins,
		},
	}
}
