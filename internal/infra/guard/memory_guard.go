// Package guard provides single-flight locks keyed by arbitrary strings.
package guard

import (
	"context"
	"sync"

	"redcolabora/internal/domain/service"
)

// memoryGuard serializes holders inside one process.
type memoryGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryGuard creates an in-process guard.
func NewMemoryGuard() service.ToggleGuard {
	return &memoryGuard{held: make(map[string]struct{})}
}

func (g *memoryGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return nil, service.ErrGuardBusy
	}
	g.held[key] = struct{}{}

	var once sync.Once

	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}
