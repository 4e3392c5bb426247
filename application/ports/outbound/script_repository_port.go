package outbound

import (
	"context"
	"errors"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

// ErrScriptNotFound is returned for both a missing record and a record owned
// by someone else, so callers cannot probe for existence.
var ErrScriptNotFound = errors.New("script not found")

type ScriptRepositoryPort interface {
	Insert(ctx context.Context, record domain.ScriptRecord) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.ScriptSummary, error)
	GetByID(ctx context.Context, ownerID string, id string) (domain.ScriptRecord, error)
	DeleteByID(ctx context.Context, ownerID string, id string) error
}
