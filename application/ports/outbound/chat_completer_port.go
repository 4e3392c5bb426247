package outbound

import "context"

type ChatCompleterPort interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
