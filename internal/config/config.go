// Package config loads marvelgo settings from flags, the environment, .env and config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyPublicKey       = "marvel.public_key"
	KeyPrivateKey      = "marvel.private_key"
	KeyBaseURL         = "marvel.base_url"
	KeyTimeout         = "marvel.timeout"
	KeyCacheBackend    = "cache.backend"
	KeyCacheDBFile     = "cache.dbfile"
	KeyCacheExpireDays = "cache.expire_days"
	KeyCacheDSN        = "cache.dsn"
	KeyCacheTable      = "cache.table"
	KeyCacheSize       = "cache.size"
)

// Cache backends.
const (
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"
	BackendNone     = "none"
)

// Backends lists every supported cache backend.
var Backends = []string{BackendSQLite, BackendMemory, BackendBadger, BackendPostgres, BackendDynamoDB, BackendNone}

// ErrUnknownBackend is returned for a cache.backend value that is not in Backends.
var ErrUnknownBackend = errors.New("unknown cache backend")

// envBindings maps viper keys to environment variables.
var envBindings = map[string]string{
	KeyPublicKey:    "MARVEL_PUBLIC_KEY",
	KeyPrivateKey:   "MARVEL_PRIVATE_KEY",
	KeyBaseURL:      "MARVEL_BASE_URL",
	KeyCacheBackend: "MARVEL_CACHE_BACKEND",
	KeyCacheDBFile:  "MARVEL_CACHE_DBFILE",
}

// Config is a snapshot of the resolved settings.
type Config struct {
	PublicKey  string
	PrivateKey string
	BaseURL    string
	Timeout    time.Duration

	CacheBackend    string
	CacheDBFile     string
	CacheExpireDays int
	CacheDSN        string
	CacheTable      string
	CacheSize       int
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault(KeyBaseURL, "http://gateway.marvel.com:80/v1/public")
	viper.SetDefault(KeyTimeout, "10s")
	viper.SetDefault(KeyCacheBackend, BackendSQLite)
	viper.SetDefault(KeyCacheDBFile, "./marvel_cache.db")
	viper.SetDefault(KeyCacheExpireDays, 0)
	viper.SetDefault(KeyCacheTable, "marvel-cache")
	viper.SetDefault(KeyCacheSize, 1024)
}

// BindEnv binds the MARVEL_* environment variables.
func BindEnv() error {
	viper.AutomaticEnv()
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s: %w", env, err)
		}
	}
	return nil
}

// LoadDotEnv loads environment variables from the given files, or ".env" when
// none are given. Missing files are ignored and existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("No env file", "file", f)
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ReadConfigFile reads config.yaml from dir if it exists.
func ReadConfigFile(dir string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("Config file not found, using defaults and environment")
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	slog.Debug("Loaded config file", "file", viper.ConfigFileUsed())
	return nil
}

// InitConfig runs the full load sequence: .env, defaults, environment, config.yaml.
func InitConfig() error {
	if err := LoadDotEnv(); err != nil {
		return err
	}
	SetDefaults()
	if err := BindEnv(); err != nil {
		return err
	}
	return ReadConfigFile(".")
}

// Load returns the current settings.
func Load() (*Config, error) {
	cfg := &Config{
		PublicKey:       viper.GetString(KeyPublicKey),
		PrivateKey:      viper.GetString(KeyPrivateKey),
		BaseURL:         viper.GetString(KeyBaseURL),
		Timeout:         viper.GetDuration(KeyTimeout),
		CacheBackend:    viper.GetString(KeyCacheBackend),
		CacheDBFile:     viper.GetString(KeyCacheDBFile),
		CacheExpireDays: viper.GetInt(KeyCacheExpireDays),
		CacheDSN:        viper.GetString(KeyCacheDSN),
		CacheTable:      viper.GetString(KeyCacheTable),
		CacheSize:       viper.GetInt(KeyCacheSize),
	}
	if !validBackend(cfg.CacheBackend) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.CacheBackend)
	}
	return cfg, nil
}

func validBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
