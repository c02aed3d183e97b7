package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/garden-server/internal/model"
)

var _ model.GraphStore = (*GraphRepository)(nil)

type GraphRepository struct {
	db DBTX
}

func NewGraphRepository(db DBTX) *GraphRepository {
	return &GraphRepository{db: db}
}

func (r *GraphRepository) AddFollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	query := `INSERT INTO user_follows (follower_id, following_id) VALUES ($1, $2)
			  ON CONFLICT DO NOTHING`

	return r.insertEdge(ctx, query, followerID, followingID)
}

func (r *GraphRepository) RemoveFollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	query := `DELETE FROM user_follows WHERE follower_id = $1 AND following_id = $2`

	res, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to remove follow: %w", err)
	}
	return affectedOne(res)
}

func (r *GraphRepository) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_follows WHERE follower_id = $1 AND following_id = $2)`

	return r.exists(ctx, query, followerID, followingID)
}

func (r *GraphRepository) AddBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	query := `INSERT INTO user_blocks (blocker_id, blocked_id) VALUES ($1, $2)
			  ON CONFLICT DO NOTHING`

	return r.insertEdge(ctx, query, blockerID, blockedID)
}

func (r *GraphRepository) RemoveBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	query := `DELETE FROM user_blocks WHERE blocker_id = $1 AND blocked_id = $2`

	res, err := r.db.ExecContext(ctx, query, blockerID, blockedID)
	if err != nil {
		return fmt.Errorf("failed to remove block: %w", err)
	}
	return affectedOne(res)
}

func (r *GraphRepository) IsBlocked(ctx context.Context, blockerID, blockedID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_blocks WHERE blocker_id = $1 AND blocked_id = $2)`

	return r.exists(ctx, query, blockerID, blockedID)
}

// Relations projects the edge tables and request back-references of a user.
func (r *GraphRepository) Relations(ctx context.Context, userID uuid.UUID) (model.Relations, error) {
	var found bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&found)
	if err != nil {
		return model.Relations{}, fmt.Errorf("failed to check user: %w", err)
	}
	if !found {
		return model.Relations{}, model.ErrNotFound
	}

	var rel model.Relations
	projections := []struct {
		dst   *[]uuid.UUID
		query string
	}{
		{&rel.Followers, `SELECT follower_id FROM user_follows WHERE following_id = $1 ORDER BY created_at`},
		{&rel.FollowingUsers, `SELECT following_id FROM user_follows WHERE follower_id = $1 ORDER BY created_at`},
		{&rel.BlockedUsers, `SELECT blocked_id FROM user_blocks WHERE blocker_id = $1 ORDER BY created_at`},
		{&rel.BlockedBy, `SELECT blocker_id FROM user_blocks WHERE blocked_id = $1 ORDER BY created_at`},
		{&rel.FollowRequestsSent, `SELECT id FROM follow_requests WHERE from_id = $1 ORDER BY created_at`},
		{&rel.FollowRequestsReceived, `SELECT id FROM follow_requests WHERE to_id = $1 ORDER BY created_at`},
	}
	for _, p := range projections {
		ids, err := r.ids(ctx, p.query, userID)
		if err != nil {
			return model.Relations{}, err
		}
		*p.dst = ids
	}

	return rel, nil
}

func (r *GraphRepository) Followers(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	query := `SELECT u.id, u.name, u.username, u.profile_image, u.is_verified,
			  EXISTS (SELECT 1 FROM user_follows b WHERE b.follower_id = $1 AND b.following_id = u.id)
			  FROM user_follows f JOIN users u ON u.id = f.follower_id
			  WHERE f.following_id = $1
			  ORDER BY f.created_at`

	return r.summaries(ctx, query, userID)
}

func (r *GraphRepository) Following(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	query := `SELECT u.id, u.name, u.username, u.profile_image, u.is_verified, TRUE
			  FROM user_follows f JOIN users u ON u.id = f.following_id
			  WHERE f.follower_id = $1
			  ORDER BY f.created_at`

	return r.summaries(ctx, query, userID)
}

func (r *GraphRepository) Blocked(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	query := `SELECT u.id, u.name, u.username, u.profile_image, u.is_verified, FALSE
			  FROM user_blocks b JOIN users u ON u.id = b.blocked_id
			  WHERE b.blocker_id = $1
			  ORDER BY b.created_at`

	return r.summaries(ctx, query, userID)
}

// insertEdge reports an existing edge as ErrDuplicate without aborting the
// surrounding transaction.
func (r *GraphRepository) insertEdge(ctx context.Context, query string, from, to uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("failed to insert edge: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrDuplicate
	}
	return nil
}

func (r *GraphRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check edge: %w", err)
	}
	return ok, nil
}

func (r *GraphRepository) ids(ctx context.Context, query string, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query relations: %w", err)
	}
	defer rows.Close()

	out := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan relation: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate relations: %w", err)
	}
	return out, nil
}

func (r *GraphRepository) summaries(ctx context.Context, query string, userID uuid.UUID) ([]model.UserSummary, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	out := []model.UserSummary{}
	for rows.Next() {
		var s model.UserSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Username, &s.ProfileImage, &s.IsVerified, &s.IsFollowing); err != nil {
			return nil, fmt.Errorf("failed to scan user summary: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user summaries: %w", err)
	}
	return out, nil
}
