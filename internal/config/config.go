// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	TourAPI TourAPIConfig
	Cache   CacheConfig
	Search  SearchConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TourAPIConfig holds settings for the remote tour API client.
type TourAPIConfig struct {
	BaseURL      string        `env:"TOUR_API_BASE_URL" envDefault:"http://localhost:9000"`
	Timeout      time.Duration `env:"TOUR_API_TIMEOUT" envDefault:"10s"`
	RateLimitRPS float64       `env:"TOUR_API_RATE_LIMIT_RPS" envDefault:"10"`
	MaxRetries   int           `env:"TOUR_API_MAX_RETRIES" envDefault:"3"`
}

// CacheConfig holds settings for the Redis result cache.
type CacheConfig struct {
	Enabled  bool          `env:"CACHE_ENABLED" envDefault:"true"`
	RedisURL string        `env:"CACHE_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

// SearchConfig holds settings for interactive search sessions.
type SearchConfig struct {
	DebounceWindow time.Duration `env:"SEARCH_DEBOUNCE_WINDOW" envDefault:"350ms"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.TourAPI.BaseURL == "" {
		return fmt.Errorf("TOUR_API_BASE_URL must not be empty")
	}
	if cfg.TourAPI.Timeout <= 0 {
		return fmt.Errorf("TOUR_API_TIMEOUT must be positive")
	}
	if cfg.TourAPI.RateLimitRPS <= 0 {
		return fmt.Errorf("TOUR_API_RATE_LIMIT_RPS must be positive")
	}
	if cfg.TourAPI.MaxRetries < 1 {
		return fmt.Errorf("TOUR_API_MAX_RETRIES must be at least 1")
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.RedisURL == "" {
			return fmt.Errorf("CACHE_REDIS_URL must not be empty when caching is enabled")
		}
		if cfg.Cache.TTL <= 0 {
			return fmt.Errorf("CACHE_TTL must be positive")
		}
	}

	if cfg.Search.DebounceWindow <= 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE_WINDOW must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
