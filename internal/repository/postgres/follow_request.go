package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/garden-server/internal/model"
)

var _ model.FollowRequestStore = (*FollowRequestRepository)(nil)

const followRequestColumns = `id, from_id, to_id, status, created_at, updated_at`

type FollowRequestRepository struct {
	db DBTX
}

func NewFollowRequestRepository(db DBTX) *FollowRequestRepository {
	return &FollowRequestRepository{db: db}
}

func scanFollowRequest(row rowScanner) (model.FollowRequest, error) {
	var req model.FollowRequest
	err := row.Scan(&req.ID, &req.FromID, &req.ToID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.FollowRequest{}, model.ErrNotFound
	}
	return req, err
}

func (r *FollowRequestRepository) Create(ctx context.Context, request model.FollowRequest) (model.FollowRequest, error) {
	query := `INSERT INTO follow_requests (id, from_id, to_id, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + followRequestColumns

	saved, err := scanFollowRequest(r.db.QueryRowContext(ctx, query,
		request.ID, request.FromID, request.ToID, string(request.Status)))
	if err != nil {
		if isUniqueViolation(err) {
			return model.FollowRequest{}, model.ErrDuplicate
		}
		return model.FollowRequest{}, fmt.Errorf("failed to create follow request: %w", err)
	}
	return saved, nil
}

func (r *FollowRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (model.FollowRequest, error) {
	query := `SELECT ` + followRequestColumns + ` FROM follow_requests WHERE id = $1`

	req, err := scanFollowRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.FollowRequest{}, fmt.Errorf("failed to get follow request: %w", err)
	}
	return req, err
}

func (r *FollowRequestRepository) GetPending(ctx context.Context, fromID, toID uuid.UUID) (model.FollowRequest, error) {
	query := `SELECT ` + followRequestColumns + ` FROM follow_requests
			  WHERE from_id = $1 AND to_id = $2 AND status = $3`

	req, err := scanFollowRequest(r.db.QueryRowContext(ctx, query, fromID, toID, string(model.RequestPending)))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.FollowRequest{}, fmt.Errorf("failed to get pending follow request: %w", err)
	}
	return req, err
}

func (r *FollowRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) (model.FollowRequest, error) {
	query := `UPDATE follow_requests SET status = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + followRequestColumns

	req, err := scanFollowRequest(r.db.QueryRowContext(ctx, query, id, string(status)))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.FollowRequest{}, fmt.Errorf("failed to update follow request: %w", err)
	}
	return req, err
}

func (r *FollowRequestRepository) ListPendingFor(ctx context.Context, toID uuid.UUID) ([]model.FollowRequest, error) {
	query := `SELECT ` + followRequestColumns + ` FROM follow_requests
			  WHERE to_id = $1 AND status = $2
			  ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, toID, string(model.RequestPending))
	if err != nil {
		return nil, fmt.Errorf("failed to list follow requests: %w", err)
	}
	defer rows.Close()

	out := []model.FollowRequest{}
	for rows.Next() {
		req, err := scanFollowRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan follow request: %w", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate follow requests: %w", err)
	}
	return out, nil
}
