package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Logging    LogConfig
	RateLimit  RateLimitConfig
	Quadrature QuadratureConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	// GlobalRPS caps requests across all clients. Zero disables the global limit.
	GlobalRPS   int `envconfig:"RATE_LIMIT_GLOBAL_RPS" default:"0"`
	GlobalBurst int `envconfig:"RATE_LIMIT_GLOBAL_BURST" default:"0"`
}

// QuadratureConfig holds the per-rule default step widths used when a
// request omits one, and the largest partition a request may ask for.
type QuadratureConfig struct {
	MidpointWidth  float64 `envconfig:"QUAD_MIDPOINT_WIDTH" default:"0.05"`
	TrapezoidWidth float64 `envconfig:"QUAD_TRAPEZOID_WIDTH" default:"0.05"`
	MaxSamples     int     `envconfig:"QUAD_MAX_SAMPLES" default:"10000000"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Quadrature: QuadratureConfig{
			MidpointWidth:  0.05,
			TrapezoidWidth: 0.05,
			MaxSamples:     10_000_000,
		},
	}
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Quadrature.MidpointWidth <= 0 {
		return fmt.Errorf("QUAD_MIDPOINT_WIDTH must be positive, got %v", c.Quadrature.MidpointWidth)
	}
	if c.Quadrature.TrapezoidWidth <= 0 {
		return fmt.Errorf("QUAD_TRAPEZOID_WIDTH must be positive, got %v", c.Quadrature.TrapezoidWidth)
	}
	if c.RateLimit.GlobalRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_GLOBAL_RPS must not be negative, got %d", c.RateLimit.GlobalRPS)
	}
	if c.Quadrature.MaxSamples < 1 {
		return fmt.Errorf("QUAD_MAX_SAMPLES must be at least 1, got %d", c.Quadrature.MaxSamples)
	}
	return nil
}
