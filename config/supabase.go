package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// SupabaseConfig holds the identity provider endpoint and key. Both must be
// set for token verification to work; IsConfigured gates client construction
// so a missing pair degrades API routes to a misconfiguration error instead of
// failing boot.
type SupabaseConfig struct {
	Url     string `envconfig:"SUPABASE_URL"`
	AnonKey string `envconfig:"SUPABASE_ANON_KEY"`
}

func (c *SupabaseConfig) IsConfigured() bool {
	return c.Url != "" && c.AnonKey != ""
}

func GetSupabaseConfig() (*SupabaseConfig, error) {
	var cfg SupabaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load supabase config: %w", err)
	}
	return &cfg, nil
}
