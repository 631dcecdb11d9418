// Package config loads the service configuration from a TOML file, an
// optional .env file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

type Config struct {
	Addr   string `toml:"addr"`
	WebDir string `toml:"web_dir"`
	// storage
	Storage       string `toml:"storage"`
	SQLitePath    string `toml:"sqlite_path"`
	DatabaseURL   string `toml:"database_url"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisPrefix   string `toml:"redis_prefix"`
	CacheSizeMB   int    `toml:"cache_size_mb"`
	// domain
	TimeZone       string `toml:"time_zone"`
	MaxUploadBytes int64  `toml:"max_upload_bytes"`
	// http
	AllowedOrigins []string `toml:"allowed_origins"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Addr:           ":8080",
		WebDir:         "web",
		Storage:        StorageSQLite,
		SQLitePath:     "data/fitdiary.db",
		RedisPrefix:    "fitdiary:",
		CacheSizeMB:    8,
		TimeZone:       "Asia/Hong_Kong",
		MaxUploadBytes: 5 << 20,
		LogLevel:       "info",
		LogToStdout:    true,
	}
}

// Load reads .env (if any), the section env of the TOML file at path (if it
// exists), then applies environment overrides and defaults.
func Load(env, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		var t Toml
		_, err := toml.DecodeFile(path, &t)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("decode %s: %w", path, err)
		default:
			section, err := t.Get(env)
			if err != nil {
				return nil, err
			}
			if section != nil {
				cfg = section
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	str("FITDIARY_ADDR", &c.Addr)
	str("FITDIARY_WEB_DIR", &c.WebDir)
	str("FITDIARY_STORAGE", &c.Storage)
	str("FITDIARY_SQLITE_PATH", &c.SQLitePath)
	str("DATABASE_URL", &c.DatabaseURL)
	str("REDIS_ADDR", &c.RedisAddr)
	str("REDIS_PASSWORD", &c.RedisPassword)
	str("TZ_NAME", &c.TimeZone)
	str("LOG_LEVEL", &c.LogLevel)

	if v, ok := lookup("FITDIARY_MAX_UPLOAD_BYTES"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("FITDIARY_MAX_UPLOAD_BYTES: %w", err)
		}
		c.MaxUploadBytes = n
	}
	return nil
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.WebDir == "" {
		c.WebDir = d.WebDir
	}
	if c.Storage == "" {
		c.Storage = d.Storage
	}
	if c.SQLitePath == "" {
		c.SQLitePath = d.SQLitePath
	}
	if c.TimeZone == "" {
		c.TimeZone = d.TimeZone
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = d.MaxUploadBytes
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage) {
	case StorageSQLite, StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("storage postgres requires DATABASE_URL")
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			return errors.New("storage redis requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unknown storage: %s", c.Storage)
	}
	return nil
}
