package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// DatabaseConfig carries the Postgres connection string. When DATABASE_URL is
// empty the API starts without persistence and script storage routes report a
// configuration error.
type DatabaseConfig struct {
	Url string `envconfig:"DATABASE_URL"`
}

func (c *DatabaseConfig) IsConfigured() bool {
	return c.Url != ""
}

func GetDatabaseConfig() (*DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	return &cfg, nil
}
