package adapters

import (
	"fmt"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/panjf2000/ants/v2"
)

type antsTaskDispatcher struct {
	pool *ants.Pool
}

// NewAntsTaskDispatcher wraps a bounded goroutine pool. Submissions block
// until a worker is free rather than spawning unbounded goroutines.
func NewAntsTaskDispatcher(size int) (outbound.TaskDispatcher, func(), error) {
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	return &antsTaskDispatcher{pool: pool}, pool.Release, nil
}

func (d *antsTaskDispatcher) Submit(task func()) error {
	return d.pool.Submit(task)
}
