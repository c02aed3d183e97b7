package model

import (
	"context"

	"github.com/google/uuid"
)

// GraphStore persists follow and block edges.
type GraphStore interface {
	// AddFollow returns ErrDuplicate when the edge already exists.
	AddFollow(ctx context.Context, followerID, followingID uuid.UUID) error
	// RemoveFollow returns ErrNotFound when the edge does not exist.
	RemoveFollow(ctx context.Context, followerID, followingID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	AddBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error
	RemoveBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error
	IsBlocked(ctx context.Context, blockerID, blockedID uuid.UUID) (bool, error)
	Relations(ctx context.Context, userID uuid.UUID) (Relations, error)
	Followers(ctx context.Context, userID uuid.UUID) ([]UserSummary, error)
	Following(ctx context.Context, userID uuid.UUID) ([]UserSummary, error)
	Blocked(ctx context.Context, userID uuid.UUID) ([]UserSummary, error)
}

// FollowerStatistics is a read-only projection of a user's graph state.
type FollowerStatistics struct {
	UserID               uuid.UUID   `json:"user_id"`
	FollowersAmount      int         `json:"followers_amount"`
	FollowingUsersAmount int         `json:"following_users_amount"`
	TotalDonatedSeed     int64       `json:"total_donated_seed"`
	Followers            []uuid.UUID `json:"followers"`
	FollowingUsers       []uuid.UUID `json:"following_users"`
	BlockedUsers         []uuid.UUID `json:"blocked_users"`
	UserBlockedBy        []uuid.UUID `json:"user_blocked_by"`
}
