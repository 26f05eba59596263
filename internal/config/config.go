// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/olegiv/academy-go/internal/store"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Env      string `env:"ACADEMY_ENV" envDefault:"development"`
	LogLevel string `env:"ACADEMY_LOG_LEVEL" envDefault:"info"`

	// Simulated store latency window in milliseconds.
	LatencyMinMS int `env:"ACADEMY_LATENCY_MIN_MS" envDefault:"200"`
	LatencyMaxMS int `env:"ACADEMY_LATENCY_MAX_MS" envDefault:"400"`

	// Featured list sizes.
	FeaturedPosts   int `env:"ACADEMY_FEATURED_POSTS" envDefault:"3"`
	FeaturedReviews int `env:"ACADEMY_FEATURED_REVIEWS" envDefault:"6"`

	// Cache configuration
	CacheTTL int `env:"ACADEMY_CACHE_TTL" envDefault:"300"` // Default cache TTL in seconds

	// Demo configuration
	DemoResetHours int `env:"ACADEMY_DEMO_RESET_HOURS" envDefault:"24"` // Hours between demo data resets, 0 disables
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Latency returns the configured store latency window.
func (c Config) Latency() store.Latency {
	return store.Latency{
		Min: time.Duration(c.LatencyMinMS) * time.Millisecond,
		Max: time.Duration(c.LatencyMaxMS) * time.Millisecond,
	}
}

// CacheTTLDuration returns the cache TTL as a duration.
func (c Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// DemoResetInterval returns the demo reset interval. A zero interval
// means the reset job is disabled.
func (c Config) DemoResetInterval() time.Duration {
	return time.Duration(c.DemoResetHours) * time.Hour
}

// SlogLevel converts the configured log level string to a slog.Level.
// Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.LatencyMinMS < 0 || cfg.LatencyMaxMS < 0 {
		return nil, fmt.Errorf("latency bounds must not be negative, got %d..%d ms",
			cfg.LatencyMinMS, cfg.LatencyMaxMS)
	}
	if cfg.LatencyMinMS > cfg.LatencyMaxMS {
		return nil, fmt.Errorf("ACADEMY_LATENCY_MIN_MS (%d) exceeds ACADEMY_LATENCY_MAX_MS (%d)",
			cfg.LatencyMinMS, cfg.LatencyMaxMS)
	}
	if cfg.DemoResetHours < 0 {
		return nil, fmt.Errorf("ACADEMY_DEMO_RESET_HOURS must not be negative, got %d", cfg.DemoResetHours)
	}

	return cfg, nil
}
