package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/garden-server/internal/model"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(_ context.Context, user model.User) (model.User, error) {
	defer r.s.lock()()
	st := r.s.db.st

	if r.conflicts(st, user) {
		return model.User{}, model.ErrDuplicate
	}
	if _, ok := st.users[user.ID]; ok {
		return model.User{}, model.ErrDuplicate
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	user.Relations = model.Relations{}

	st.users[user.ID] = user
	st.userOrder = append(st.userOrder, user.ID)
	return user, nil
}

func (r *userRepo) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	defer r.s.lock()()
	user, ok := r.s.db.st.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (model.User, error) {
	defer r.s.lock()()
	for _, id := range r.s.db.st.userOrder {
		if u := r.s.db.st.users[id]; u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (model.User, error) {
	defer r.s.lock()()
	for _, id := range r.s.db.st.userOrder {
		if u := r.s.db.st.users[id]; strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *userRepo) Lock(_ context.Context, ids ...uuid.UUID) ([]model.User, error) {
	defer r.s.lock()()
	out := make([]model.User, 0, len(ids))
	for _, id := range ids {
		user, ok := r.s.db.st.users[id]
		if !ok {
			return nil, model.ErrNotFound
		}
		out = append(out, user)
	}
	return out, nil
}

func (r *userRepo) List(_ context.Context) ([]model.User, error) {
	defer r.s.lock()()
	out := make([]model.User, 0, len(r.s.db.st.userOrder))
	for _, id := range r.s.db.st.userOrder {
		out = append(out, r.s.db.st.users[id])
	}
	return out, nil
}

func (r *userRepo) Update(_ context.Context, user model.User) (model.User, error) {
	defer r.s.lock()()
	st := r.s.db.st

	current, ok := st.users[user.ID]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	if r.conflicts(st, user) {
		return model.User{}, model.ErrDuplicate
	}

	// only profile fields are written here
	user.PasswordHash = current.PasswordHash
	user.TwoFactor = current.TwoFactor
	user.IsVerified = current.IsVerified
	user.IsAdmin = current.IsAdmin
	user.FollowersAmount = current.FollowersAmount
	user.FollowingUsersAmount = current.FollowingUsersAmount
	user.TotalDonatedSeed = current.TotalDonatedSeed
	user.CreatedAt = current.CreatedAt
	user.UpdatedAt = time.Now()
	user.Relations = model.Relations{}

	st.users[user.ID] = user
	return user, nil
}

func (r *userRepo) SetPasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	return r.modify(id, func(u *model.User) { u.PasswordHash = hash })
}

func (r *userRepo) SetTwoFactor(_ context.Context, id uuid.UUID, tf model.TwoFactor) error {
	return r.modify(id, func(u *model.User) { u.TwoFactor = tf })
}

func (r *userRepo) SetVerified(_ context.Context, id uuid.UUID, verified bool) (model.User, error) {
	var out model.User
	err := r.modify(id, func(u *model.User) {
		u.IsVerified = verified
		out = *u
	})
	return out, err
}

// modify applies fn to the stored user under the store lock.
func (r *userRepo) modify(id uuid.UUID, fn func(*model.User)) error {
	defer r.s.lock()()
	user, ok := r.s.db.st.users[id]
	if !ok {
		return model.ErrNotFound
	}
	fn(&user)
	user.UpdatedAt = time.Now()
	r.s.db.st.users[id] = user
	return nil
}

func (r *userRepo) AdjustCounters(_ context.Context, id uuid.UUID, followersDelta, followingDelta int) error {
	defer r.s.lock()()
	user, ok := r.s.db.st.users[id]
	if !ok {
		return model.ErrNotFound
	}
	user.FollowersAmount += followersDelta
	user.FollowingUsersAmount += followingDelta
	user.UpdatedAt = time.Now()
	r.s.db.st.users[id] = user
	return nil
}

func (r *userRepo) Delete(_ context.Context, id uuid.UUID) error {
	defer r.s.lock()()
	st := r.s.db.st

	if _, ok := st.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(st.users, id)
	st.userOrder = slices.DeleteFunc(st.userOrder, func(u uuid.UUID) bool { return u == id })

	touches := func(e edge) bool { return e.from == id || e.to == id }
	st.follows = slices.DeleteFunc(st.follows, touches)
	st.blocks = slices.DeleteFunc(st.blocks, touches)

	for reqID, req := range st.requests {
		if req.FromID == id || req.ToID == id {
			delete(st.requests, reqID)
		}
	}
	st.reqOrder = slices.DeleteFunc(st.reqOrder, func(reqID uuid.UUID) bool {
		_, ok := st.requests[reqID]
		return !ok
	})

	for sid, sess := range st.sessions {
		if sess.UserID == id {
			delete(st.sessions, sid)
		}
	}
	return nil
}

func (r *userRepo) conflicts(st *state, user model.User) bool {
	for id, other := range st.users {
		if id == user.ID {
			continue
		}
		if other.Email == user.Email || strings.EqualFold(other.Username, user.Username) {
			return true
		}
	}
	return false
}
