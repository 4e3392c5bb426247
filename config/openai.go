package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type OpenAIConfig struct {
	ApiKey    string `envconfig:"OPENAI_API_KEY" required:"true"`
	BaseUrl   string `envconfig:"OPENAI_BASE_URL"`
	Model     string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	MaxTokens int    `envconfig:"OPENAI_MAX_TOKENS" default:"2000"`
}

func GetOpenAIConfig() (*OpenAIConfig, error) {
	var cfg OpenAIConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load openai config: %w", err)
	}
	return &cfg, nil
}
