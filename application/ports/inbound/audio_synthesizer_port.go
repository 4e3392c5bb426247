package inbound

import (
	"context"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

type AudioSynthesizerPort interface {
	Synthesize(ctx context.Context, script []domain.DialogueLine) ([]byte, error)
}
