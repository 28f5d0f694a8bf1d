// Package config loads runtime configuration from the environment and
// an optional .env file.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Upstream providers
	ESPNSiteBase string        `mapstructure:"ESPN_SITE_BASE"`
	ESPNCoreBase string        `mapstructure:"ESPN_CORE_BASE"`
	CFBDBase     string        `mapstructure:"CFBD_BASE"`
	CFBDToken    string        `mapstructure:"CFBD_TOKEN"`
	HTTPTimeout  time.Duration `mapstructure:"HTTP_TIMEOUT"`

	// Cache
	CacheBackend string        `mapstructure:"CACHE_BACKEND"` // "memory" or "redis"
	CacheTTL     time.Duration `mapstructure:"CACHE_TTL"`
	RedisURL     string        `mapstructure:"REDIS_URL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Cache warmer
	EnableWarmer bool   `mapstructure:"ENABLE_WARMER"`
	WarmSchedule string `mapstructure:"WARM_SCHEDULE"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"` // "json" or "text"
}

func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("ESPN_SITE_BASE", "")
	viper.SetDefault("ESPN_CORE_BASE", "")
	viper.SetDefault("CFBD_BASE", "")
	viper.SetDefault("CFBD_TOKEN", "")
	viper.SetDefault("HTTP_TIMEOUT", "12s")
	viper.SetDefault("CACHE_BACKEND", "memory")
	viper.SetDefault("CACHE_TTL", "60s")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("ENABLE_WARMER", true)
	viper.SetDefault("WARM_SCHEDULE", "@every 45s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	return &config, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
