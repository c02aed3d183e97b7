package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/garden-server/internal/model"
)

type sessionRepo struct {
	s *Store
}

func (r *sessionRepo) Create(_ context.Context, session model.Session) (model.Session, error) {
	defer r.s.lock()()
	if _, ok := r.s.db.st.sessions[session.ID]; ok {
		return model.Session{}, model.ErrDuplicate
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	r.s.db.st.sessions[session.ID] = session
	return session, nil
}

func (r *sessionRepo) GetByID(_ context.Context, id uuid.UUID) (model.Session, error) {
	defer r.s.lock()()
	sess, ok := r.s.db.st.sessions[id]
	if !ok {
		return model.Session{}, model.ErrNotFound
	}
	return sess, nil
}

func (r *sessionRepo) Invalidate(_ context.Context, id uuid.UUID) error {
	defer r.s.lock()()
	sess, ok := r.s.db.st.sessions[id]
	if !ok {
		return model.ErrNotFound
	}
	if sess.Valid {
		sess.Valid = false
		sess.UpdatedAt = time.Now()
		r.s.db.st.sessions[id] = sess
	}
	return nil
}

func (r *sessionRepo) ListValidByUser(_ context.Context, userID uuid.UUID) ([]model.Session, error) {
	defer r.s.lock()()
	out := []model.Session{}
	for _, sess := range r.s.db.st.sessions {
		if sess.UserID == userID && sess.Valid {
			out = append(out, sess)
		}
	}
	slices.SortFunc(out, func(a, b model.Session) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}
