package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/apperrors"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/inbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
	"github.com/google/uuid"
)

const (
	minDurationMinutes = 5
	maxDurationMinutes = 120
)

type podcastGenerationService struct {
	logger          outbound.LoggerPort
	scriptGenerator outbound.ScriptGeneratorPort
	repository      outbound.ScriptRepositoryPort
	workerPool      outbound.TaskDispatcher
}

// NewPodcastGenerationService builds the generate-research pipeline: validate,
// call the script-generation service, persist best-effort. The repository may
// be nil when the store is unconfigured; persistence is then skipped.
func NewPodcastGenerationService(
	logger outbound.LoggerPort,
	scriptGenerator outbound.ScriptGeneratorPort,
	repository outbound.ScriptRepositoryPort,
	workerPool outbound.TaskDispatcher,
) inbound.PodcastGeneratorPort {
	return &podcastGenerationService{
		logger:          logger,
		scriptGenerator: scriptGenerator,
		repository:      repository,
		workerPool:      workerPool,
	}
}

func (s *podcastGenerationService) Generate(ctx context.Context, params inbound.GeneratePodcastParams) (inbound.GenerationOutcome, error) {
	topic := strings.TrimSpace(params.Topic)
	if topic == "" {
		return inbound.GenerationOutcome{}, apperrors.NewInvalidInput("topic is required and must be a non-empty string")
	}

	if params.DurationMinutes < minDurationMinutes || params.DurationMinutes > maxDurationMinutes {
		return inbound.GenerationOutcome{}, apperrors.NewInvalidInput(
			fmt.Sprintf("durationMinutes must be between %d and %d", minDurationMinutes, maxDurationMinutes))
	}

	style := strings.ToLower(strings.TrimSpace(params.Style))
	if style == "" {
		return inbound.GenerationOutcome{}, apperrors.NewInvalidInput("style is required")
	}
	if !domain.IsValidStyle(style) {
		return inbound.GenerationOutcome{}, apperrors.NewInvalidInput(
			"style must be one of: " + strings.Join(domain.PodcastStyles, ", "))
	}

	script, err := s.scriptGenerator.GenerateScript(ctx, domain.ResearchRequest{
		Topic:           topic,
		DurationMinutes: params.DurationMinutes,
		Style:           style,
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Script generation failed", map[string]interface{}{
			"topic": topic,
			"style": style,
		})
		return inbound.GenerationOutcome{}, err
	}

	outcome := inbound.GenerationOutcome{
		Script:    script,
		Persisted: s.persist(ctx, params.Owner, topic, params.DurationMinutes, style, script),
	}

	return outcome, nil
}

// persist writes the generated script best-effort. Failures are logged and
// reported in the outcome; they never fail the generation request.
func (s *podcastGenerationService) persist(ctx context.Context, owner domain.Identity, topic string,
	durationMinutes int, style string, script []domain.DialogueLine) inbound.PersistOutcome {
	if s.repository == nil {
		return inbound.PersistOutcome{Skipped: true}
	}

	record := domain.ScriptRecord{
		ID:              uuid.NewString(),
		OwnerID:         owner.ID,
		Topic:           topic,
		DurationMinutes: durationMinutes,
		Style:           style,
		ScriptData:      script,
	}

	done := make(chan error, 1)
	err := s.workerPool.Submit(func() {
		done <- s.repository.Insert(ctx, record)
	})
	if err == nil {
		err = <-done
	}

	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to save generated script, continuing without a saved id", map[string]interface{}{
			"script_id": record.ID,
			"owner_id":  owner.ID,
		})
		return inbound.PersistOutcome{Err: err}
	}

	return inbound.PersistOutcome{ID: record.ID}
}
