package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth     AuthConfig
	Store    StoreConfig
	Throttle ThrottleConfig
}

// AuthConfig carries the single admin identity. The defaults mirror the
// previous deployment; production overrides both via env.
type AuthConfig struct {
	AdminUsername string `env:"ADMIN_USERNAME, default=klorpe"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=12344321klorpe"`
	// JWTSecret left empty switches the session authority to a
	// generated-per-process secret: tokens stop surviving restarts.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
}

type StoreConfig struct {
	DataFile string `env:"DATA_FILE, default=data/accounts.json"`
	// Startup seed sources, consulted only when the store is empty:
	// a server-local txt file path, or a base64-encoded blob.
	AccountsFile string `env:"ACCOUNTS_FILE"`
	AccountsTxt  string `env:"ACCOUNTS_TXT"`
}

type ThrottleConfig struct {
	MaxAttempts    int `env:"LOGIN_MAX_ATTEMPTS,    default=10"`
	LockoutMinutes int `env:"LOGIN_LOCKOUT_MINUTES, default=15"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
