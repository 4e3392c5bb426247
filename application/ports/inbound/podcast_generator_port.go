package inbound

import (
	"context"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

type GeneratePodcastParams struct {
	Topic           string
	DurationMinutes int
	Style           string
	Owner           domain.Identity
}

// PersistOutcome is the best-effort persistence result. Exactly one of
// ID, Err, or Skipped is meaningful; a failed or skipped write never fails
// the generation itself.
type PersistOutcome struct {
	ID      string
	Err     error
	Skipped bool
}

type GenerationOutcome struct {
	Script    []domain.DialogueLine
	Persisted PersistOutcome
}

// SavedID returns the persisted record id, or nil when the write was skipped
// or failed.
func (o GenerationOutcome) SavedID() *string {
	if o.Persisted.Skipped || o.Persisted.Err != nil || o.Persisted.ID == "" {
		return nil
	}
	id := o.Persisted.ID
	return &id
}

type PodcastGeneratorPort interface {
	Generate(ctx context.Context, params GeneratePodcastParams) (GenerationOutcome, error)
}
