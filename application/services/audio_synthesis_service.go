package services

import (
	"context"
	"strings"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/apperrors"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/inbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

type audioSynthesisService struct {
	logger         outbound.LoggerPort
	audioGenerator outbound.AudioGeneratorPort
	voiceID        string
}

func NewAudioSynthesisService(logger outbound.LoggerPort, audioGenerator outbound.AudioGeneratorPort, voiceID string) inbound.AudioSynthesizerPort {
	return &audioSynthesisService{
		logger:         logger,
		audioGenerator: audioGenerator,
		voiceID:        voiceID,
	}
}

// Synthesize flattens the script into a single text blob and sends it to the
// speech service as one voice. Speaker identity and audioEffect annotations
// carry no weight here.
func (s *audioSynthesisService) Synthesize(ctx context.Context, script []domain.DialogueLine) ([]byte, error) {
	if len(script) == 0 {
		return nil, apperrors.NewInvalidInput("script must be a non-empty array of dialogue lines")
	}

	parts := make([]string, 0, len(script))
	for _, line := range script {
		text := strings.TrimSpace(line.Text)
		if text != "" {
			parts = append(parts, text)
		}
	}

	blob := strings.Join(parts, " ")
	if blob == "" {
		return nil, apperrors.NewInvalidInput("script contains no speakable text")
	}

	audio, err := s.audioGenerator.Generate(ctx, outbound.GenerateAudioParams{
		Text:    blob,
		VoiceID: s.voiceID,
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Speech synthesis failed", map[string]interface{}{
			"voice_id":   s.voiceID,
			"text_bytes": len(blob),
		})
		return nil, err
	}

	return audio, nil
}
