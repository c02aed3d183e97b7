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

// Graph maintains follow, block and follow request edges together with the
// counters derived from them. Mutations touching two users run in one
// transaction with both rows locked.
type Graph struct {
	store  model.Store
	logger *logger.Logger
}

func NewGraph(store model.Store, logger *logger.Logger) *Graph {
	return &Graph{store: store, logger: logger}
}

// Follow adds a follow edge from followerID to targetID.
func (g *Graph) Follow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if followerID == targetID {
		return apiErrors.ErrSelfAction
	}

	err := g.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		if _, _, err := lockPair(ctx, tx, followerID, targetID); err != nil {
			return err
		}
		following, err := tx.Graph().IsFollowing(ctx, followerID, targetID)
		if err != nil {
			return fmt.Errorf("failed to check follow: %w", err)
		}
		if following {
			return apiErrors.ErrAlreadyFollowing
		}
		return addFollow(ctx, tx, followerID, targetID)
	})
	if err != nil {
		return err
	}

	g.logger.Info("Graph service: follow added",
		"follower_id", followerID,
		"following_id", targetID)

	return nil
}

// Unfollow removes the follow edge from followerID to targetID.
func (g *Graph) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if followerID == targetID {
		return apiErrors.ErrSelfAction
	}

	err := g.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		if _, _, err := lockPair(ctx, tx, followerID, targetID); err != nil {
			return err
		}
		err := tx.Graph().RemoveFollow(ctx, followerID, targetID)
		if errors.Is(err, model.ErrNotFound) {
			return apiErrors.ErrNotFollowing
		}
		if err != nil {
			return fmt.Errorf("failed to remove follow: %w", err)
		}
		if err := tx.Users().AdjustCounters(ctx, targetID, -1, 0); err != nil {
			return fmt.Errorf("failed to update followers counter: %w", err)
		}
		if err := tx.Users().AdjustCounters(ctx, followerID, 0, -1); err != nil {
			return fmt.Errorf("failed to update following counter: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.logger.Info("Graph service: follow removed",
		"follower_id", followerID,
		"following_id", targetID)

	return nil
}

// Block records that blockerID blocked blockedID. Existing follow edges are
// left in place.
func (g *Graph) Block(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	if blockerID == blockedID {
		return apiErrors.ErrSelfAction
	}

	err := g.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		if _, _, err := lockPair(ctx, tx, blockerID, blockedID); err != nil {
			return err
		}
		err := tx.Graph().AddBlock(ctx, blockerID, blockedID)
		if errors.Is(err, model.ErrDuplicate) {
			return apiErrors.ErrAlreadyBlocked
		}
		if err != nil {
			return fmt.Errorf("failed to add block: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.logger.Info("Graph service: block added",
		"blocker_id", blockerID,
		"blocked_id", blockedID)

	return nil
}

// Unblock removes a block edge.
func (g *Graph) Unblock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	if blockerID == blockedID {
		return apiErrors.ErrSelfAction
	}

	err := g.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		if _, _, err := lockPair(ctx, tx, blockerID, blockedID); err != nil {
			return err
		}
		err := tx.Graph().RemoveBlock(ctx, blockerID, blockedID)
		if errors.Is(err, model.ErrNotFound) {
			return apiErrors.ErrNotBlocked
		}
		if err != nil {
			return fmt.Errorf("failed to remove block: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.logger.Info("Graph service: block removed",
		"blocker_id", blockerID,
		"blocked_id", blockedID)

	return nil
}

// SendFollowRequest creates a pending request from fromID to toID.
func (g *Graph) SendFollowRequest(ctx context.Context, fromID, toID uuid.UUID) (model.FollowRequest, error) {
	if fromID == toID {
		return model.FollowRequest{}, apiErrors.ErrSelfAction
	}

	var request model.FollowRequest
	err := g.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		if _, _, err := lockPair(ctx, tx, fromID, toID); err != nil {
			return err
		}

		following, err := tx.Graph().IsFollowing(ctx, fromID, toID)
		if err != nil {
			return fmt.Errorf("failed to check follow: %w", err)
		}
		if following {
			return apiErrors.ErrAlreadyFollowing
		}

		blocked, err := tx.Graph().IsBlocked(ctx, toID, fromID)
		if err != nil {
			return fmt.Errorf("failed to check block: %w", err)
		}
		if blocked {
			return apiErrors.ErrBlocked
		}

		_, err = tx.FollowRequests().GetPending(ctx, fromID, toID)
		if err == nil {
			return apiErrors.ErrRequestPending
		}
		if !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("failed to check pending request: %w", err)
		}

		request, err = tx.FollowRequests().Create(ctx, model.FollowRequest{
			ID:     uuid.New(),
			FromID: fromID,
			ToID:   toID,
			Status: model.RequestPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create follow request: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.FollowRequest{}, err
	}

	g.logger.Info("Graph service: follow request sent",
		"request_id", request.ID,
		"from_id", fromID,
		"to_id", toID)

	return request, nil
}

// UpdateRequestStatus accepts or declines a pending request. Only the
// recipient may resolve it, and accepting creates the follow edge.
func (g *Graph) UpdateRequestStatus(ctx context.Context, requestID, actingUserID uuid.UUID, status model.RequestStatus) (model.FollowRequest, error) {
	if status != model.RequestAccepted && status != model.RequestDeclined {
		return model.FollowRequest{}, apiErrors.ErrInvalidStatus
	}

	var request model.FollowRequest
	err := g.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		current, err := tx.FollowRequests().GetByID(ctx, requestID)
		if errors.Is(err, model.ErrNotFound) {
			return apiErrors.ErrRequestNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get follow request: %w", err)
		}
		if current.ToID != actingUserID {
			return apiErrors.ErrNotRequestTarget
		}
		if current.Status != model.RequestPending {
			return apiErrors.ErrRequestResolved
		}

		if status == model.RequestAccepted {
			if _, _, err := lockPair(ctx, tx, current.FromID, current.ToID); err != nil {
				return err
			}
			following, err := tx.Graph().IsFollowing(ctx, current.FromID, current.ToID)
			if err != nil {
				return fmt.Errorf("failed to check follow: %w", err)
			}
			if !following {
				if err := addFollow(ctx, tx, current.FromID, current.ToID); err != nil {
					return err
				}
			}
		}

		request, err = tx.FollowRequests().UpdateStatus(ctx, requestID, status)
		if err != nil {
			return fmt.Errorf("failed to update follow request: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.FollowRequest{}, err
	}

	g.logger.Info("Graph service: follow request resolved",
		"request_id", requestID,
		"status", status)

	return request, nil
}

// GetFollowRequest returns a request to one of its participants.
func (g *Graph) GetFollowRequest(ctx context.Context, requestID, viewerID uuid.UUID) (model.FollowRequest, error) {
	request, err := g.store.FollowRequests().GetByID(ctx, requestID)
	if errors.Is(err, model.ErrNotFound) {
		return model.FollowRequest{}, apiErrors.ErrRequestNotFound
	}
	if err != nil {
		return model.FollowRequest{}, fmt.Errorf("failed to get follow request: %w", err)
	}
	if request.FromID != viewerID && request.ToID != viewerID {
		return model.FollowRequest{}, apiErrors.ErrForbidden
	}
	return request, nil
}

// ListPendingFollowRequests returns requests awaiting userID's decision.
func (g *Graph) ListPendingFollowRequests(ctx context.Context, userID uuid.UUID) ([]model.FollowRequest, error) {
	requests, err := g.store.FollowRequests().ListPendingFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow requests: %w", err)
	}
	return requests, nil
}

// GetFollowerStatistics projects the counters and edge lists of a user.
func (g *Graph) GetFollowerStatistics(ctx context.Context, userID uuid.UUID) (model.FollowerStatistics, error) {
	user, err := getUser(ctx, g.store, userID)
	if err != nil {
		return model.FollowerStatistics{}, err
	}
	rel, err := g.store.Graph().Relations(ctx, userID)
	if err != nil {
		return model.FollowerStatistics{}, fmt.Errorf("failed to load relations: %w", err)
	}

	return model.FollowerStatistics{
		UserID:               user.ID,
		FollowersAmount:      user.FollowersAmount,
		FollowingUsersAmount: user.FollowingUsersAmount,
		TotalDonatedSeed:     user.TotalDonatedSeed,
		Followers:            rel.Followers,
		FollowingUsers:       rel.FollowingUsers,
		BlockedUsers:         rel.BlockedUsers,
		UserBlockedBy:        rel.BlockedBy,
	}, nil
}

// ListFollowers returns the users following userID; each entry is flagged
// when userID follows back.
func (g *Graph) ListFollowers(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	if _, err := getUser(ctx, g.store, userID); err != nil {
		return nil, err
	}
	out, err := g.store.Graph().Followers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return out, nil
}

func (g *Graph) ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	if _, err := getUser(ctx, g.store, userID); err != nil {
		return nil, err
	}
	out, err := g.store.Graph().Following(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return out, nil
}

func (g *Graph) ListBlocked(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	if _, err := getUser(ctx, g.store, userID); err != nil {
		return nil, err
	}
	out, err := g.store.Graph().Blocked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked users: %w", err)
	}
	return out, nil
}

// addFollow writes the edge and both counters. Callers hold the row locks.
func addFollow(ctx context.Context, tx model.Store, followerID, targetID uuid.UUID) error {
	if err := tx.Graph().AddFollow(ctx, followerID, targetID); err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return apiErrors.ErrAlreadyFollowing
		}
		return fmt.Errorf("failed to add follow: %w", err)
	}
	if err := tx.Users().AdjustCounters(ctx, targetID, 1, 0); err != nil {
		return fmt.Errorf("failed to update followers counter: %w", err)
	}
	if err := tx.Users().AdjustCounters(ctx, followerID, 0, 1); err != nil {
		return fmt.Errorf("failed to update following counter: %w", err)
	}
	return nil
}
