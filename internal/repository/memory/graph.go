package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/dtroode/garden-server/internal/model"
)

type graphRepo struct {
	s *Store
}

func (r *graphRepo) AddFollow(_ context.Context, followerID, followingID uuid.UUID) error {
	defer r.s.lock()()
	return addEdge(&r.s.db.st.follows, edge{from: followerID, to: followingID})
}

func (r *graphRepo) RemoveFollow(_ context.Context, followerID, followingID uuid.UUID) error {
	defer r.s.lock()()
	return removeEdge(&r.s.db.st.follows, edge{from: followerID, to: followingID})
}

func (r *graphRepo) IsFollowing(_ context.Context, followerID, followingID uuid.UUID) (bool, error) {
	defer r.s.lock()()
	return slices.Contains(r.s.db.st.follows, edge{from: followerID, to: followingID}), nil
}

func (r *graphRepo) AddBlock(_ context.Context, blockerID, blockedID uuid.UUID) error {
	defer r.s.lock()()
	return addEdge(&r.s.db.st.blocks, edge{from: blockerID, to: blockedID})
}

func (r *graphRepo) RemoveBlock(_ context.Context, blockerID, blockedID uuid.UUID) error {
	defer r.s.lock()()
	return removeEdge(&r.s.db.st.blocks, edge{from: blockerID, to: blockedID})
}

func (r *graphRepo) IsBlocked(_ context.Context, blockerID, blockedID uuid.UUID) (bool, error) {
	defer r.s.lock()()
	return slices.Contains(r.s.db.st.blocks, edge{from: blockerID, to: blockedID}), nil
}

func (r *graphRepo) Relations(_ context.Context, userID uuid.UUID) (model.Relations, error) {
	defer r.s.lock()()
	st := r.s.db.st

	if _, ok := st.users[userID]; !ok {
		return model.Relations{}, model.ErrNotFound
	}

	rel := model.Relations{
		Followers:              []uuid.UUID{},
		FollowingUsers:         []uuid.UUID{},
		BlockedUsers:           []uuid.UUID{},
		BlockedBy:              []uuid.UUID{},
		FollowRequestsSent:     []uuid.UUID{},
		FollowRequestsReceived: []uuid.UUID{},
	}
	for _, e := range st.follows {
		if e.to == userID {
			rel.Followers = append(rel.Followers, e.from)
		}
		if e.from == userID {
			rel.FollowingUsers = append(rel.FollowingUsers, e.to)
		}
	}
	for _, e := range st.blocks {
		if e.from == userID {
			rel.BlockedUsers = append(rel.BlockedUsers, e.to)
		}
		if e.to == userID {
			rel.BlockedBy = append(rel.BlockedBy, e.from)
		}
	}
	for _, id := range st.reqOrder {
		req := st.requests[id]
		if req.FromID == userID {
			rel.FollowRequestsSent = append(rel.FollowRequestsSent, req.ID)
		}
		if req.ToID == userID {
			rel.FollowRequestsReceived = append(rel.FollowRequestsReceived, req.ID)
		}
	}
	return rel, nil
}

func (r *graphRepo) Followers(_ context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	defer r.s.lock()()
	st := r.s.db.st

	out := []model.UserSummary{}
	for _, e := range st.follows {
		if e.to != userID {
			continue
		}
		s := summary(st.users[e.from])
		s.IsFollowing = slices.Contains(st.follows, edge{from: userID, to: e.from})
		out = append(out, s)
	}
	return out, nil
}

func (r *graphRepo) Following(_ context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	defer r.s.lock()()
	st := r.s.db.st

	out := []model.UserSummary{}
	for _, e := range st.follows {
		if e.from == userID {
			s := summary(st.users[e.to])
			s.IsFollowing = true
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *graphRepo) Blocked(_ context.Context, userID uuid.UUID) ([]model.UserSummary, error) {
	defer r.s.lock()()
	st := r.s.db.st

	out := []model.UserSummary{}
	for _, e := range st.blocks {
		if e.from == userID {
			out = append(out, summary(st.users[e.to]))
		}
	}
	return out, nil
}

func addEdge(edges *[]edge, e edge) error {
	if slices.Contains(*edges, e) {
		return model.ErrDuplicate
	}
	*edges = append(*edges, e)
	return nil
}

func removeEdge(edges *[]edge, e edge) error {
	i := slices.Index(*edges, e)
	if i < 0 {
		return model.ErrNotFound
	}
	*edges = slices.Delete(*edges, i, i+1)
	return nil
}

func summary(u model.User) model.UserSummary {
	return model.UserSummary{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		ProfileImage: u.ProfileImage,
		IsVerified:   u.IsVerified,
	}
}
