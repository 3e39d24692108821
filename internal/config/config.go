// Package config loads application configuration from file and environment.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`
	Google  GoogleConfig  `yaml:"google" mapstructure:"google"`
	Geocode GeocodeConfig `yaml:"geocode" mapstructure:"geocode"`
	Refresh RefreshConfig `yaml:"refresh" mapstructure:"refresh"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// DatasetConfig locates the dealers input file.
type DatasetConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// GoogleConfig holds the Maps Platform credential shared by the geocoding
// and places clients.
type GoogleConfig struct {
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
}

// GeocodeConfig tunes the memoizing geocoder.
type GeocodeConfig struct {
	CacheSize   int     `yaml:"cache_size" mapstructure:"cache_size"`
	CacheTTLSec int     `yaml:"cache_ttl_secs" mapstructure:"cache_ttl_secs"`
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// RefreshConfig tunes the live-refresh batch.
type RefreshConfig struct {
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// ServerConfig configures the dashboard API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DEALER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dataset.path", "dealers_data.json")
	v.SetDefault("google.api_key", "")
	v.SetDefault("geocode.cache_size", 100)
	v.SetDefault("geocode.cache_ttl_secs", 86400)
	v.SetDefault("geocode.rate_limit", 10)
	v.SetDefault("refresh.rate_limit", 10)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
