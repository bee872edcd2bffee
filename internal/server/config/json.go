package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/obolotin/ledgerboard/internal/flagx"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
// Durations are plain integer seconds. Only fields present in the file
// override the running config.
type JsonConfig struct {
	PostgresHost       *string `json:"postgres_host"`
	PostgresPort       *int    `json:"postgres_port"`
	PostgresDatabase   *string `json:"postgres_database"`
	PostgresUser       *string `json:"postgres_user"`
	PostgresPassword   *string `json:"postgres_password"`
	SSLMode            *string `json:"ssl_mode"`
	ConnectTimeoutSecs *int    `json:"connect_timeout_seconds"`
	RedisAddr          *string `json:"redis_addr"`
	SecretKey          *string `json:"secret_key"`
	SessionTTLSecs     *int    `json:"session_ttl_seconds"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags. If no flag is given, nothing is loaded. Unreadable
// or invalid files panic: a config file that exists must be correct.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.PostgresHost != nil {
		config.PostgresHost = *c.PostgresHost
	}
	if c.PostgresPort != nil {
		config.PostgresPort = *c.PostgresPort
	}
	if c.PostgresDatabase != nil {
		config.PostgresDatabase = *c.PostgresDatabase
	}
	if c.PostgresUser != nil {
		config.PostgresUser = *c.PostgresUser
	}
	if c.PostgresPassword != nil {
		config.PostgresPassword = *c.PostgresPassword
	}
	if c.SSLMode != nil {
		config.SSLMode = *c.SSLMode
	}
	if c.ConnectTimeoutSecs != nil {
		config.ConnectTimeout = time.Duration(*c.ConnectTimeoutSecs) * time.Second
	}
	if c.RedisAddr != nil {
		config.RedisAddr = *c.RedisAddr
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.SessionTTLSecs != nil {
		config.SessionTTL = time.Duration(*c.SessionTTLSecs) * time.Second
	}
}
