package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type ResearcherConfig struct {
	Port        string `envconfig:"RESEARCHER_PORT" default:"8000"`
	Environment string `envconfig:"APP_ENV" default:"development"`
}

func (c *ResearcherConfig) IsProduction() bool {
	return c.Environment == "production"
}

func GetResearcherConfig() (*ResearcherConfig, error) {
	var cfg ResearcherConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load researcher config: %w", err)
	}
	return &cfg, nil
}
