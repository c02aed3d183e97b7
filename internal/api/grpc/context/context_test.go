package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/garden-server/internal/model"
)

func TestManager_SetAndGetIdentity(t *testing.T) {
	m := NewManager()
	identity := model.Identity{
		UserID:    uuid.New(),
		SessionID: uuid.New(),
		Username:  "alice",
	}
	ctx := m.SetIdentityToContext(stdctx.Background(), identity)

	got, ok := m.GetIdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestManager_GetIdentity_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetIdentityFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetIdentity_Anonymous(t *testing.T) {
	m := NewManager()
	ctx := m.SetIdentityToContext(stdctx.Background(), model.Identity{})

	_, ok := m.GetIdentityFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_SetIdentity_Overrides(t *testing.T) {
	m := NewManager()
	first := model.Identity{UserID: uuid.New()}
	second := model.Identity{UserID: uuid.New(), AccessToken: "fresh"}

	ctx := m.SetIdentityToContext(stdctx.Background(), first)
	ctx = m.SetIdentityToContext(ctx, second)

	got, ok := m.GetIdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, second.UserID, got.UserID)
	assert.Equal(t, "fresh", got.AccessToken)
}
