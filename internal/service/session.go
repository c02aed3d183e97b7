package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/model"
)

// SessionManager creates and invalidates login sessions. A user may hold
// any number of concurrent sessions.
type SessionManager struct {
	store  model.Store
	logger *logger.Logger
}

func NewSessionManager(store model.Store, logger *logger.Logger) *SessionManager {
	return &SessionManager{store: store, logger: logger}
}

// CreateSession opens a new valid session for userID.
func (m *SessionManager) CreateSession(ctx context.Context, userID uuid.UUID, userAgent string) (model.Session, error) {
	session, err := m.store.Sessions().Create(ctx, model.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Valid:     true,
		UserAgent: userAgent,
	})
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	m.logger.Debug("Session manager: session created",
		"user_id", userID,
		"session_id", session.ID)

	return session, nil
}

// Invalidate marks the session invalid. Repeated calls succeed.
func (m *SessionManager) Invalidate(ctx context.Context, sessionID uuid.UUID) error {
	err := m.store.Sessions().Invalidate(ctx, sessionID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}

	m.logger.Debug("Session manager: session invalidated",
		"session_id", sessionID)

	return nil
}

// ListSessions returns the valid sessions of userID.
func (m *SessionManager) ListSessions(ctx context.Context, userID uuid.UUID) ([]model.Session, error) {
	sessions, err := m.store.Sessions().ListValidByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}
