package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/garden-server/internal/model"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ model.Store = (*Store)(nil)

// Store hands out repositories bound either to the pool or, inside
// WithinTx, to the open transaction.
type Store struct {
	db   *sql.DB
	conn DBTX
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, conn: db}
}

// WithinTx runs fn in a transaction. Nested calls join the outer one.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx model.Store) error) (err error) {
	if s.db == nil {
		return fn(ctx, s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cerr)
		}
	}()

	return fn(ctx, &Store{conn: tx})
}

func (s *Store) Users() model.UserStore {
	return NewUserRepository(s.conn)
}

func (s *Store) Graph() model.GraphStore {
	return NewGraphRepository(s.conn)
}

func (s *Store) FollowRequests() model.FollowRequestStore {
	return NewFollowRequestRepository(s.conn)
}

func (s *Store) Sessions() model.SessionStore {
	return NewSessionRepository(s.conn)
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// affectedOne maps a zero-row write to ErrNotFound.
func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
