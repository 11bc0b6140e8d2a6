package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port                int    `env:"PORT" envDefault:"8080"`
	DatabaseURL         string `env:"DATABASE_URL,required"`
	IdentityURL         string `env:"IDENTITY_URL,required"`
	CatalogBaseURL      string `env:"CATALOG_BASE_URL" envDefault:"https://api.tvmaze.com"`
	CORSOrigins         string `env:"CORS_ORIGINS" envDefault:"*"`
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info"`
	SessionSweepSeconds int    `env:"SESSION_SWEEP_INTERVAL_SECONDS" envDefault:"0"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// SessionSweepInterval returns the expired-session sweep interval.
// Zero disables the sweep: expired sessions then accumulate and are only
// rejected at lookup time, which is the documented default behavior.
func (c *Config) SessionSweepInterval() time.Duration {
	return time.Duration(c.SessionSweepSeconds) * time.Second
}

// Origins splits CORS_ORIGINS into a trimmed list.
func (c *Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
