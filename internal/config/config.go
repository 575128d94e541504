// Package config loads the CLI and server settings.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Environment overrides, applied after the file.
const (
	EnvLogLevel     = "DPDA_LOG_LEVEL"
	EnvRedisAddr    = "DPDA_REDIS_ADDR"
	EnvHTTPAddr     = "DPDA_HTTP_ADDR"
	EnvEpsilonLimit = "DPDA_EPSILON_LIMIT"
)

// Config holds every tunable of the dpda binary.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	// EpsilonLimit enables epsilon moves when positive (see automaton.WithEpsilonMoves).
	EpsilonLimit int `mapstructure:"epsilon_limit"`

	Store   StoreConfig   `mapstructure:"store"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type StoreConfig struct {
	Driver  string        `mapstructure:"driver"`
	TTL     time.Duration `mapstructure:"ttl"`
	LockTTL time.Duration `mapstructure:"lock_ttl"`
	Dir     string        `mapstructure:"dir"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Store: StoreConfig{
			Driver:  StoreMemory,
			LockTTL: 30 * time.Second,
			Dir:     ".dpda/sessions",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "dpda:session:",
			},
		},
		HTTP: HTTPConfig{Addr: ":8080"},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := Decode(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "invalid config %s", path)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Decode merges YAML data into cfg. Keys absent from data keep their value.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "failed to parse yaml")
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return errors.Wrap(err, "failed to build decoder")
	}
	return decoder.Decode(raw)
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		cfg.Store.Redis.Addr = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv(EnvEpsilonLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvEpsilonLimit)
		}
		cfg.EpsilonLimit = n
	}
	return nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return errors.Newf("unknown store driver %q", c.Store.Driver)
	}
	if c.EpsilonLimit < 0 {
		return errors.Newf("epsilon_limit must not be negative, got %d", c.EpsilonLimit)
	}
	if c.Store.TTL < 0 {
		return errors.Newf("store.ttl must not be negative, got %s", c.Store.TTL)
	}
	if c.Store.LockTTL <= 0 {
		return errors.Newf("store.lock_ttl must be positive, got %s", c.Store.LockTTL)
	}
	return nil
}
