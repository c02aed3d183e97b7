package model

import "context"

// Store groups the repositories backing the domain.
type Store interface {
	Users() UserStore
	Graph() GraphStore
	FollowRequests() FollowRequestStore
	Sessions() SessionStore
	// WithinTx runs fn against a Store bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
