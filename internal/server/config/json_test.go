package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	saved := os.Args
	os.Args = append([]string{"ledgerboard"}, args...)
	t.Cleanup(func() { os.Args = saved })
}

func TestParseJson_PartialOverlay(t *testing.T) {
	raw := `{
		"postgres_host": "db.internal",
		"postgres_port": 5433,
		"connect_timeout_seconds": 10,
		"session_ttl_seconds": 1800
	}`

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	withArgs(t, "-c", path)

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.PostgresHost, "db.internal")
	assert.Equal(t, c.PostgresPort, 5433)
	assert.Equal(t, c.ConnectTimeout, 10*time.Second)
	assert.Equal(t, c.SessionTTL, 30*time.Minute)

	// Fields missing from the file keep their defaults.
	assert.Equal(t, c.PostgresPassword, "postgres")
	assert.Equal(t, c.SecretKey, "secretKey")
}

func TestParseJson_NoFlagLoadsNothing(t *testing.T) {
	withArgs(t)

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.PostgresHost, "127.0.0.1")
}

func TestParseJson_BadFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	withArgs(t, "-config", path)

	var c Config
	c.LoadDefaults()

	assert.Panics(t, func() { parseJson(&c) })
}
