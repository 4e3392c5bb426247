package inbound

import (
	"context"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

type ScriptLibraryPort interface {
	List(ctx context.Context, owner domain.Identity) ([]domain.ScriptSummary, error)
	Get(ctx context.Context, owner domain.Identity, id string) (domain.ScriptRecord, error)
	Delete(ctx context.Context, owner domain.Identity, id string) error
}
