package services

import (
	"context"
	"errors"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/apperrors"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/inbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

type scriptLibraryService struct {
	logger     outbound.LoggerPort
	repository outbound.ScriptRepositoryPort
}

// NewScriptLibraryService serves the owner-scoped scripts resource. A nil
// repository means the external store is unconfigured; every operation then
// fails with a service-misconfigured error.
func NewScriptLibraryService(logger outbound.LoggerPort, repository outbound.ScriptRepositoryPort) inbound.ScriptLibraryPort {
	return &scriptLibraryService{
		logger:     logger,
		repository: repository,
	}
}

func (s *scriptLibraryService) List(ctx context.Context, owner domain.Identity) ([]domain.ScriptSummary, error) {
	if s.repository == nil {
		return nil, apperrors.NewMisconfigured("script storage is not configured")
	}

	summaries, err := s.repository.ListByOwner(ctx, owner.ID)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to list scripts", map[string]interface{}{"owner_id": owner.ID})
		return nil, apperrors.New(apperrors.ErrorTypeUpstream, "failed to fetch scripts", err)
	}
	return summaries, nil
}

func (s *scriptLibraryService) Get(ctx context.Context, owner domain.Identity, id string) (domain.ScriptRecord, error) {
	if s.repository == nil {
		return domain.ScriptRecord{}, apperrors.NewMisconfigured("script storage is not configured")
	}

	record, err := s.repository.GetByID(ctx, owner.ID, id)
	if err != nil {
		if errors.Is(err, outbound.ErrScriptNotFound) {
			return domain.ScriptRecord{}, apperrors.NewNotFound("script not found")
		}
		s.logger.ErrorWithFields(err, "Failed to fetch script", map[string]interface{}{
			"owner_id":  owner.ID,
			"script_id": id,
		})
		return domain.ScriptRecord{}, apperrors.New(apperrors.ErrorTypeUpstream, "failed to fetch script", err)
	}
	return record, nil
}

func (s *scriptLibraryService) Delete(ctx context.Context, owner domain.Identity, id string) error {
	if s.repository == nil {
		return apperrors.NewMisconfigured("script storage is not configured")
	}

	err := s.repository.DeleteByID(ctx, owner.ID, id)
	if err != nil {
		if errors.Is(err, outbound.ErrScriptNotFound) {
			return apperrors.NewNotFound("script not found")
		}
		s.logger.ErrorWithFields(err, "Failed to delete script", map[string]interface{}{
			"owner_id":  owner.ID,
			"script_id": id,
		})
		return apperrors.New(apperrors.ErrorTypeUpstream, "failed to delete script", err)
	}
	return nil
}
