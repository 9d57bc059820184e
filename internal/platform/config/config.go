// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and handed to constructors; no
global state is kept here.
*/
package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the blog admin front-end.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// AllowedOrigins are the browser origins accepted outside development.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// REST backend the admin front-end administers.
	BackendURL string `env:"BACKEND_URL,required"`

	// BackendToken is an optional bearer token (JWT) sent with every backend call.
	BackendToken string `env:"BACKEND_TOKEN"`

	// BackendTimeout bounds a single backend round trip.
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`

	// Outbound rate limiting. Zero RPS disables the limiter.
	BackendRateLimitRPS   float64 `env:"BACKEND_RATE_LIMIT_RPS"   envDefault:"0"`
	BackendRateLimitBurst int     `env:"BACKEND_RATE_LIMIT_BURST" envDefault:"10"`

	// FormTimezone is the IANA zone datetime form fields are edited in.
	FormTimezone string `env:"FORM_TIMEZONE" envDefault:"Local"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	parsed, err := url.Parse(c.BackendURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: BACKEND_URL must be an absolute URL, got %q", c.BackendURL)
	}

	if c.BackendRateLimitRPS < 0 {
		return fmt.Errorf("config: BACKEND_RATE_LIMIT_RPS must not be negative")
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves FormTimezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.FormTimezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid FORM_TIMEZONE %q: %w", c.FormTimezone, err)
	}
	return loc, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// OriginAllowed reports whether a browser origin may call the front-end.
func (c *Config) OriginAllowed(origin string) bool {
	return slices.ContainsFunc(c.AllowedOrigins, func(allowed string) bool {
		return strings.EqualFold(strings.TrimRight(allowed, "/"), origin)
	})
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
