// Package cache is the boundary to the external view-cache collaborator.
// After a successful mutation the services mark the affected listing view
// stale; what the collaborator does with that signal is its own business.
package cache

import "context"

type Invalidator interface {
	// Invalidate marks the rendered view at path as stale.
	Invalidate(ctx context.Context, path string) error
}

// Nop is used when no cache backend is configured.
type Nop struct{}

func (Nop) Invalidate(context.Context, string) error { return nil }
