package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=4000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every session token. Required: the process must not
	// come up able to mint unverifiable credentials.
	JWTSecret string        `env:"JWT_SECRET, required"`
	JWTTTL    time.Duration `env:"JWT_TTL,    default=24h"`

	// BlacklistBackend selects where revoked tokens live: "redis" (default)
	// or "mongo" (TTL index on the revoked_tokens collection).
	BlacklistBackend string `env:"BLACKLIST_BACKEND, default=redis"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, required"`
	Database string `env:"MONGO_DB,  default=quickride"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required values fail here, at startup, never per-request.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.BlacklistBackend != "redis" && cfg.BlacklistBackend != "mongo" {
		return nil, fmt.Errorf("config: unknown BLACKLIST_BACKEND %q", cfg.BlacklistBackend)
	}
	return &cfg, nil
}
