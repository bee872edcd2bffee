// Package config handles configuration for the server-side data layer,
// including defaults, JSON overlay, environment variables, and command-line
// flags (applied in that order).
package config

import "time"

// Config holds runtime settings for the dashboard data layer.
//
// Fields:
//   - PostgresHost/Port/Database/User/Password: connection parameters for the
//     relational store, normally supplied by the environment.
//   - SSLMode: Postgres sslmode parameter.
//   - ConnectTimeout: how long a single connection acquisition may take.
//   - RedisAddr: view-cache backend; empty disables cache invalidation.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use
//     the test default in prod.
//   - SessionTTL: session token lifetime.
type Config struct {
	PostgresHost     string
	PostgresPort     int
	PostgresDatabase string
	PostgresUser     string
	PostgresPassword string
	SSLMode          string
	ConnectTimeout   time.Duration
	RedisAddr        string
	SecretKey        string
	SessionTTL       time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.PostgresHost = "127.0.0.1"
	c.PostgresPort = 5432
	c.PostgresDatabase = "dashboard"
	c.PostgresUser = "postgres"
	c.PostgresPassword = "postgres"
	c.SSLMode = "disable"
	c.ConnectTimeout = 5 * time.Second
	c.RedisAddr = ""
	c.SecretKey = "secretKey"
	c.SessionTTL = 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
