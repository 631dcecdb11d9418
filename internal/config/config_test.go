package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToml = `
[development]
addr = ":9090"
storage = "memory"
log_level = "debug"
allowed_origins = ["http://localhost:5173"]

[production]
addr = ":80"
storage = "postgres"
database_url = "postgres://fitdiary@db/fitdiary?sslmode=disable"
max_upload_bytes = 1024
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testToml), 0o600))
	return path
}

func TestLoad_Sections(t *testing.T) {
	path := writeConfig(t)

	dev, err := Load("dev", path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", dev.Addr)
	assert.Equal(t, StorageMemory, dev.Storage)
	assert.Equal(t, "debug", dev.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, dev.AllowedOrigins)
	assert.Equal(t, "Asia/Hong_Kong", dev.TimeZone, "defaults fill unset fields")

	prod, err := Load("production", path)
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, prod.Storage)
	assert.EqualValues(t, 1024, prod.MaxUploadBytes)

	_, err = Load("staging", path)
	assert.Error(t, err)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FITDIARY_ADDR", ":7000")
	t.Setenv("FITDIARY_STORAGE", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("TZ_NAME", "UTC")
	t.Setenv("FITDIARY_MAX_UPLOAD_BYTES", "2048")

	cfg, err := Load("dev", writeConfig(t))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "UTC", cfg.TimeZone)
	assert.EqualValues(t, 2048, cfg.MaxUploadBytes)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"sqlite", Config{Storage: StorageSQLite}, false},
		{"postgres without url", Config{Storage: StoragePostgres}, true},
		{"redis without addr", Config{Storage: StorageRedis}, true},
		{"unknown", Config{Storage: "floppy"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
