package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/garden-server/internal/model"
)

type requestRepo struct {
	s *Store
}

func (r *requestRepo) Create(_ context.Context, request model.FollowRequest) (model.FollowRequest, error) {
	defer r.s.lock()()
	st := r.s.db.st

	if _, ok := st.requests[request.ID]; ok {
		return model.FollowRequest{}, model.ErrDuplicate
	}
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	st.requests[request.ID] = request
	st.reqOrder = append(st.reqOrder, request.ID)
	return request, nil
}

func (r *requestRepo) GetByID(_ context.Context, id uuid.UUID) (model.FollowRequest, error) {
	defer r.s.lock()()
	req, ok := r.s.db.st.requests[id]
	if !ok {
		return model.FollowRequest{}, model.ErrNotFound
	}
	return req, nil
}

func (r *requestRepo) GetPending(_ context.Context, fromID, toID uuid.UUID) (model.FollowRequest, error) {
	defer r.s.lock()()
	for _, id := range r.s.db.st.reqOrder {
		req := r.s.db.st.requests[id]
		if req.FromID == fromID && req.ToID == toID && req.Status == model.RequestPending {
			return req, nil
		}
	}
	return model.FollowRequest{}, model.ErrNotFound
}

func (r *requestRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.RequestStatus) (model.FollowRequest, error) {
	defer r.s.lock()()
	req, ok := r.s.db.st.requests[id]
	if !ok {
		return model.FollowRequest{}, model.ErrNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	r.s.db.st.requests[id] = req
	return req, nil
}

func (r *requestRepo) ListPendingFor(_ context.Context, toID uuid.UUID) ([]model.FollowRequest, error) {
	defer r.s.lock()()
	out := []model.FollowRequest{}
	for _, id := range r.s.db.st.reqOrder {
		req := r.s.db.st.requests[id]
		if req.ToID == toID && req.Status == model.RequestPending {
			out = append(out, req)
		}
	}
	return out, nil
}
