package config

import (
	"os"
	"time"

	"toolbox-api/internal/infrastructure"
)

type Config struct {
	ListenAddr      string
	PostgreSQL      string
	JWTSecretKey    string
	TokenTTL        time.Duration
	LoginRateWindow time.Duration
	LoginRateLimit  int
	GlobalRateLimit int
	GlobalRateBurst int
}

func Load() *Config {
	return &Config{
		ListenAddr:      infrastructure.GetEnvAsString("LISTEN_ADDR", ":8080"),
		PostgreSQL:      os.Getenv("PostgreSQL"),
		JWTSecretKey:    os.Getenv("JWTSECRETKEY"),
		TokenTTL:        infrastructure.GetEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		LoginRateWindow: infrastructure.GetEnvAsDuration("LOGIN_RATE_WINDOW", time.Minute),
		LoginRateLimit:  infrastructure.GetEnvAsInt("LOGIN_RATE_LIMIT", 10),
		GlobalRateLimit: infrastructure.GetEnvAsInt("RATE_LIMIT_REQUESTS", 5000),
		GlobalRateBurst: infrastructure.GetEnvAsInt("RATE_LIMIT_BURST", 1000),
	}
}
