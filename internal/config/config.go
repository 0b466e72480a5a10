// Package config loads weekplan runtime configuration with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/weekplan/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. WEEKPLAN_DATA_DIR
// or WEEKPLAN_CACHE_REDIS_ADDR.
const EnvPrefix = "WEEKPLAN"

// RedisConfig holds the redis cache connection.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

// CacheConfig selects the catalog cache.
type CacheConfig struct {
	Backend string        `mapstructure:"backend" validate:"oneof=memory redis none"`
	TTL     time.Duration `mapstructure:"ttl" validate:"gte=0"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

// Config holds all runtime configuration.
// Values are populated from .weekplan.yaml, WEEKPLAN_* env vars, and CLI flags.
type Config struct {
	DataDir     string         `mapstructure:"data_dir" validate:"required"`
	Venue       string         `mapstructure:"venue" validate:"required"`
	RatingsFile string         `mapstructure:"ratings_file"`
	Concurrency int            `mapstructure:"concurrency" validate:"gte=1,lte=64"`
	MaxResults  int            `mapstructure:"max_results" validate:"gte=0"`
	Log         logging.Config `mapstructure:"log"`
	Cache       CacheConfig    `mapstructure:"cache"`
}

// Init points v at the config file (or .weekplan.yaml in the working and
// home directories) and enables env overrides. A missing default config
// file is not an error; a missing explicit one is.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".weekplan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault("data_dir", "data")
	v.SetDefault("venue", "Main")
	v.SetDefault("ratings_file", "")
	v.SetDefault("concurrency", 4)
	v.SetDefault("max_results", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.outputs", []string{"stderr"})
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.ttl", 30*time.Minute)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Cache.Backend == "redis" && cfg.Cache.Redis.Addr == "" {
		return Config{}, errors.New("config: cache.redis.addr is required for the redis backend")
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())
