package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envOverlay mirrors the environment variables the deployment supplies.
// Unset variables leave the running config untouched.
type envOverlay struct {
	PostgresHost     string        `env:"POSTGRES_HOST"`
	PostgresPort     int           `env:"POSTGRES_PORT"`
	PostgresDatabase string        `env:"POSTGRES_DATABASE"`
	PostgresUser     string        `env:"POSTGRES_USER"`
	PostgresPassword string        `env:"POSTGRES_PASSWORD"`
	SSLMode          string        `env:"POSTGRES_SSLMODE"`
	ConnectTimeout   time.Duration `env:"DB_CONNECT_TIMEOUT"`
	RedisAddr        string        `env:"REDIS_ADDR"`
	SecretKey        string        `env:"AUTH_SECRET"`
	SessionTTL       time.Duration `env:"SESSION_TTL"`
}

func parseEnv(config *Config) {
	var e envOverlay
	if err := envconfig.Process(context.Background(), &e); err != nil {
		panic(err)
	}

	if e.PostgresHost != "" {
		config.PostgresHost = e.PostgresHost
	}
	if e.PostgresPort != 0 {
		config.PostgresPort = e.PostgresPort
	}
	if e.PostgresDatabase != "" {
		config.PostgresDatabase = e.PostgresDatabase
	}
	if e.PostgresUser != "" {
		config.PostgresUser = e.PostgresUser
	}
	if e.PostgresPassword != "" {
		config.PostgresPassword = e.PostgresPassword
	}
	if e.SSLMode != "" {
		config.SSLMode = e.SSLMode
	}
	if e.ConnectTimeout != 0 {
		config.ConnectTimeout = e.ConnectTimeout
	}
	if e.RedisAddr != "" {
		config.RedisAddr = e.RedisAddr
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
	if e.SessionTTL != 0 {
		config.SessionTTL = e.SessionTTL
	}
}
