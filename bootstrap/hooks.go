package bootstrap

import (
	"context"
	"fmt"
)

// Hook is a callback run when the Runtime is closed. Host programs use it
// to flush or shut down the providers they handed to Apply.
type Hook func(ctx context.Context) error

// OnClose registers hooks that run, in order, before Close restores the
// previous sequence defaults.
func (r *Runtime) OnClose(hooks ...Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onClose = append(r.onClose, hooks...)
}

// runHooks executes hooks sequentially and returns the first error.
// Later hooks still run after a failure.
func runHooks(ctx context.Context, hooks []Hook) error {
	var first error
	for i, h := range hooks {
		if err := h(ctx); err != nil && first == nil {
			first = fmt.Errorf("close hook %d failed: %w", i, err)
		}
	}
	return first
}
