package model

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the caller resolved from the request tokens.
type Identity struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	Email     string
	Username  string
	IsAdmin   bool
	// AccessToken is set when an expired access token was replaced during
	// deserialization; the transport returns it to the client.
	AccessToken string
}

// Anonymous reports whether no user was resolved.
func (i Identity) Anonymous() bool {
	return i.UserID == uuid.Nil
}

// ContextManager stores the resolved identity on a request context.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}
