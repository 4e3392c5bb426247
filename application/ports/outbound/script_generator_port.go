package outbound

import (
	"context"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

type ScriptGeneratorPort interface {
	GenerateScript(ctx context.Context, req domain.ResearchRequest) ([]domain.DialogueLine, error)
}
