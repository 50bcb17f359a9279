package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates all runtime settings of a scenario server.
type Config struct {
	App  AppConfig
	HTTP HTTPConfig `envPrefix:"HTTP_"`
	CORS CORSConfig `envPrefix:"CORS_"`
}

type AppConfig struct {
	Environment string `env:"NODE_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string
}

// HTTPConfig holds listener settings. Host and Port are read without the
// HTTP_ prefix so the conventional PORT variable works unchanged.
type HTTPConfig struct {
	Host              string
	Port              int
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Enabled reports whether any origin was configured.
func (c CORSConfig) Enabled() bool {
	return len(c.AllowedOrigins) > 0
}

// Defaults are the per-scenario values used when HOST or PORT is unset.
type Defaults struct {
	ServiceName string
	Host        string
	Port        int
}

type listenerEnv struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT"`
}

// Load parses environment variables into Config and performs validation.
func Load(defaults Defaults) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	listener := listenerEnv{Host: defaults.Host, Port: defaults.Port}
	if err := env.Parse(&listener); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if listener.Port < 0 || listener.Port > 65535 {
		return nil, fmt.Errorf("PORT %d out of range", listener.Port)
	}

	cfg.App.ServiceName = defaults.ServiceName
	cfg.HTTP.Host = listener.Host
	cfg.HTTP.Port = listener.Port
	return cfg, nil
}

// Addr returns the host:port the listener binds to.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
