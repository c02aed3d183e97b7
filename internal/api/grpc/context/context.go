package context

import (
	"context"

	"github.com/dtroode/garden-server/internal/model"
)

type identityKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager represents a request context manager for caller identities.
// The authentication interceptor stores the identity it resolved and
// handlers read it back.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a context carrying identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext returns the identity stored on ctx. The boolean is
// false when no authenticated caller was resolved.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(model.Identity)
	if !ok || identity.Anonymous() {
		return model.Identity{}, false
	}
	return identity, true
}
