package outbound

import (
	"context"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

type TokenVerifierPort interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}
