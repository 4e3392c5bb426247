package inbound

import (
	"context"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

type ResearchPipelinePort interface {
	GenerateScript(ctx context.Context, req domain.ResearchRequest) ([]domain.DialogueLine, error)
}
