package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config holds all server configuration loaded from environment variables.
type Config struct {
	// Host is the HTTP bind host, empty for all interfaces.
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"3000"`
	// GRPCAddr is the gRPC health listen address. Empty disables it.
	GRPCAddr string `env:"GRPC_ADDR"`
	// HelloVariant selects the body served by the hello command.
	HelloVariant string `env:"HELLO_VARIANT" envDefault:"lec3"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	// AllowedOrigins lists CORS origins for the users API.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

// ListenAddr is the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
