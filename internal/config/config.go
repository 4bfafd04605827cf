// Package config provides environment-driven configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds everything the HTTP server needs at startup.
// The model path, database URL and session secret are deliberately
// environment-only: none of them belong in source.
type ServerConfig struct {
	Port        int
	DatabaseURL string
	ModelPath   string
}

// NewServerConfig creates a server configuration from environment variables.
// It reads PORT (default: 8080), DATABASE_URL (required) and MODEL_PATH (required).
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080" // default
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	config := &ServerConfig{
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ModelPath:   os.Getenv("MODEL_PATH"),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.ModelPath == "" {
		return fmt.Errorf("MODEL_PATH is required but not set")
	}
	return nil
}
