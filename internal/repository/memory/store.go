// Package memory is an in-process implementation of model.Store. A single
// mutex serialises every operation; transactions hold it for their whole
// duration and restore a snapshot on failure.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/garden-server/internal/model"
)

type edge struct {
	from uuid.UUID
	to   uuid.UUID
}

type state struct {
	users     map[uuid.UUID]model.User
	userOrder []uuid.UUID
	follows   []edge
	blocks    []edge
	requests  map[uuid.UUID]model.FollowRequest
	reqOrder  []uuid.UUID
	sessions  map[uuid.UUID]model.Session
}

func newState() *state {
	return &state{
		users:    make(map[uuid.UUID]model.User),
		requests: make(map[uuid.UUID]model.FollowRequest),
		sessions: make(map[uuid.UUID]model.Session),
	}
}

func (st *state) clone() *state {
	c := &state{
		users:     make(map[uuid.UUID]model.User, len(st.users)),
		userOrder: slices.Clone(st.userOrder),
		follows:   slices.Clone(st.follows),
		blocks:    slices.Clone(st.blocks),
		requests:  make(map[uuid.UUID]model.FollowRequest, len(st.requests)),
		reqOrder:  slices.Clone(st.reqOrder),
		sessions:  make(map[uuid.UUID]model.Session, len(st.sessions)),
	}
	for k, v := range st.users {
		c.users[k] = v
	}
	for k, v := range st.requests {
		c.requests[k] = v
	}
	for k, v := range st.sessions {
		c.sessions[k] = v
	}
	return c
}

type db struct {
	mu sync.Mutex
	st *state
}

// Store is a model.Store kept in memory.
type Store struct {
	db   *db
	inTx bool
}

var _ model.Store = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{db: &db{st: newState()}}
}

// lock acquires the store mutex unless the caller already runs inside a
// transaction that holds it.
func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.db.mu.Lock()
	return s.db.mu.Unlock
}

// WithinTx runs fn with exclusive access to the store and rolls back every
// change fn made if it returns an error or panics.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx model.Store) error) (err error) {
	if s.inTx {
		return fn(ctx, s)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	snapshot := s.db.st.clone()
	defer func() {
		if p := recover(); p != nil {
			s.db.st = snapshot
			panic(p)
		}
		if err != nil {
			s.db.st = snapshot
		}
	}()

	return fn(ctx, &Store{db: s.db, inTx: true})
}

func (s *Store) Users() model.UserStore {
	return &userRepo{s: s}
}

func (s *Store) Graph() model.GraphStore {
	return &graphRepo{s: s}
}

func (s *Store) FollowRequests() model.FollowRequestStore {
	return &requestRepo{s: s}
}

func (s *Store) Sessions() model.SessionStore {
	return &sessionRepo{s: s}
}
