package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr         string
	AuditDatabaseURL string
	AuditQueueSize   int
	AuditWorkers     int
}

func Load() *Config {
	return &Config{
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		AuditDatabaseURL: getEnv("AUDIT_DATABASE_URL", ""),
		AuditQueueSize:   getEnvInt("AUDIT_QUEUE_SIZE", 1024),
		AuditWorkers:     getEnvInt("AUDIT_WORKERS", 2),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
