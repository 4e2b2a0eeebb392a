package mocks

import (
	"context"
	"sync"

	"hotelhills/infras/otel"
)

// Recorder is an in-memory otel.Otel that keeps every scope it opens, so tests
// can assert on traced errors and events.
type Recorder struct {
	mu     sync.Mutex
	scopes []*Scope
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()

	scope := NewScope(spanName)
	r.scopes = append(r.scopes, scope)

	return ctx, scope
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the first scope opened with the given span name, or nil.
func (r *Recorder) Scope(spanName string) *Scope {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, scope := range r.scopes {
		if scope.Name == spanName {
			return scope
		}
	}

	return nil
}

func NewOtel() *Recorder {
	return &Recorder{}
}
