package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ElevenLabsConfig configures the speech-synthesis client. The API key is
// optional at startup; the audio route reports an upstream failure when it is
// missing at call time.
type ElevenLabsConfig struct {
	ApiUrl          string  `envconfig:"ELEVEN_LABS_API_URL" default:"https://api.elevenlabs.io/v1/text-to-speech"`
	ApiKey          string  `envconfig:"ELEVEN_LABS_API_KEY"`
	ModelId         string  `envconfig:"ELEVEN_LABS_MODEL_ID" default:"eleven_monolingual_v1"`
	VoiceId         string  `envconfig:"ELEVEN_LABS_VOICE_ID" default:"21m00Tcm4TlvDq8ikWAM"`
	Stability       float64 `envconfig:"ELEVEN_LABS_STABILITY" default:"0.5"`
	SimilarityBoost float64 `envconfig:"ELEVEN_LABS_SIMILARITY_BOOST" default:"0.75"`
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	var cfg ElevenLabsConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load eleven labs config: %w", err)
	}
	return &cfg, nil
}
