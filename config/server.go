package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type ServerConfig struct {
	Port               string `envconfig:"PORT" default:"8080"`
	Environment        string `envconfig:"APP_ENV" default:"development"`
	AllowedOrigin      string `envconfig:"ALLOWED_ORIGIN" default:"*"`
	ResearchServiceUrl string `envconfig:"RESEARCH_SERVICE_URL" default:"http://localhost:8000"`
}

func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

func GetServerConfig() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	return &cfg, nil
}
