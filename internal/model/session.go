package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore persists login sessions.
type SessionStore interface {
	Create(ctx context.Context, session Session) (Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)
	// Invalidate marks the session as no longer valid. Invalidating an
	// already invalid session is not an error.
	Invalidate(ctx context.Context, id uuid.UUID) error
	ListValidByUser(ctx context.Context, userID uuid.UUID) ([]Session, error)
}

// Session is a login session. Sessions are invalidated, never deleted.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Valid     bool
	UserAgent string
	CreatedAt time.Time
	UpdatedAt time.Time
}
