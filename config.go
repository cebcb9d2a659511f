/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

package objectrocket

import (
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIServer is the production management API endpoint.
	DefaultAPIServer = "https://api.objectrocket.com"

	// DefaultTimeout bounds every API call. The remote contract specifies
	// no timeout; an unbounded call is never acceptable in practice.
	DefaultTimeout = 30 * time.Second
)

// Environment variables recognized by ConfigFromEnv.
const (
	EnvAPIKey    = "OBJECTROCKET_API_KEY"
	EnvAPIServer = "OBJECTROCKET_API_SERVER"
)

// Config carries the settings needed to construct a Client.
type Config struct {
	// APIKey is the credential authenticating every outbound request.
	APIKey string `yaml:"api_key"`

	// APIServer is the management API base URL. Defaults to DefaultAPIServer.
	APIServer string `yaml:"api_server"`

	// Timeout bounds each API call. Defaults to DefaultTimeout.
	Timeout time.Duration `yaml:"timeout"`
}

func (c *Config) applyDefaults() {
	if c.APIServer == "" {
		c.APIServer = DefaultAPIServer
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.APIServer, validation.Required, is.URL),
	)
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv builds a Config from the environment, loading a .env file
// first when one is present.
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	return Config{
		APIKey:    os.Getenv(EnvAPIKey),
		APIServer: os.Getenv(EnvAPIServer),
	}
}
