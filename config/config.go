package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Intent parsing
	Parser    ParserConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// ShutdownTimeout bounds graceful shutdown after the first signal.
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig bounds parsing work and names the zone relative dates resolve in.
type ParserConfig struct {
	Timezone         string
	CacheSize        int
	CacheTTL         time.Duration
	MaxInputLength   int
	MaxBatchSize     int
	BatchConcurrency int
}

// Location loads Timezone.
func (c ParserConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// Validate implements validation.Validatable.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Environment),
		validation.Field(&c.HTTPServer),
		validation.Field(&c.Logger),
		validation.Field(&c.Parser),
		validation.Field(&c.RateLimit),
	)
}

func (c EnvironmentConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.In("development", "production")),
	)
}

func (c HTTPServerConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.Mode, validation.Required, validation.In("debug", "release", "test")),
		validation.Field(&c.ShutdownTimeout, validation.Min(time.Duration(0))),
	)
}

func (c LoggerConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Mode, validation.Required, validation.In("debug", "production")),
		validation.Field(&c.Encoding, validation.Required, validation.In("console", "json")),
	)
}

func (c ParserConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Timezone, validation.Required, validation.By(func(any) error {
			if _, err := c.Location(); err != nil {
				return errors.New("unknown time zone")
			}
			return nil
		})),
		validation.Field(&c.CacheSize, validation.Required, validation.Min(1)),
		validation.Field(&c.CacheTTL, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.MaxInputLength, validation.Required, validation.Min(1)),
		validation.Field(&c.MaxBatchSize, validation.Required, validation.Min(1)),
		validation.Field(&c.BatchConcurrency, validation.Required, validation.Min(1)),
	)
}

func (c RateLimitConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.RequestsPerMin, validation.When(c.Enabled, validation.Required, validation.Min(1))),
	)
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/task-intent/.
// Environment variables override file values with "." replaced by "_",
// e.g. PARSER_TIMEZONE.
func Load() (*Config, error) {
	return load(viper.New(), "./config", ".", "/etc/task-intent/")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Intent parsing
	cfg.Parser.Timezone = v.GetString("parser.timezone")
	cfg.Parser.CacheSize = v.GetInt("parser.cache_size")
	cfg.Parser.CacheTTL = v.GetDuration("parser.cache_ttl")
	cfg.Parser.MaxInputLength = v.GetInt("parser.max_input_length")
	cfg.Parser.MaxBatchSize = v.GetInt("parser.max_batch_size")
	cfg.Parser.BatchConcurrency = v.GetInt("parser.batch_concurrency")

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("parser.timezone", "UTC")
	v.SetDefault("parser.cache_size", 1024)
	v.SetDefault("parser.cache_ttl", "5m")
	v.SetDefault("parser.max_input_length", 1000)
	v.SetDefault("parser.max_batch_size", 100)
	v.SetDefault("parser.batch_concurrency", 8)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 600)
}
