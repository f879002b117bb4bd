package infrastructure

import (
	"os"
	"strconv"
	"time"
)

// Typed environment lookups with a fallback. All configuration comes
// from the environment (a .env file is loaded at startup when present);
// a missing or malformed value yields the fallback instead of aborting.

func GetEnvAsString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
