package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a follow request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestAccepted RequestStatus = "Accepted"
	RequestDeclined RequestStatus = "Declined"
)

// Valid reports whether s is a known status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestDeclined:
		return true
	}
	return false
}

// FollowRequestStore persists follow requests.
type FollowRequestStore interface {
	Create(ctx context.Context, request FollowRequest) (FollowRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (FollowRequest, error)
	// GetPending returns the pending request from one user to another, if any.
	GetPending(ctx context.Context, fromID, toID uuid.UUID) (FollowRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status RequestStatus) (FollowRequest, error)
	ListPendingFor(ctx context.Context, toID uuid.UUID) ([]FollowRequest, error)
}

// FollowRequest asks the recipient to accept a follow edge from the sender.
type FollowRequest struct {
	ID        uuid.UUID
	FromID    uuid.UUID
	ToID      uuid.UUID
	Status    RequestStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
