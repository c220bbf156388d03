package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// LogPretty switches the logger to zerolog's console writer.
	LogPretty bool `env:"LOG_PRETTY, default=false"`

	IDs IDConfig

	// MetricsDump prints the metrics registry to stdout before exiting.
	MetricsDump bool `env:"METRICS_DUMP, default=false"`
}

type IDConfig struct {
	Strategy string `env:"ID_STRATEGY, default=uuid"`
	Prefix   string `env:"ID_PREFIX"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from the given lookuper.
func LoadWith(l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
