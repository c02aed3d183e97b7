package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/garden-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

const sessionColumns = `id, user_id, valid, user_agent, created_at, updated_at`

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func scanSession(row rowScanner) (model.Session, error) {
	var s model.Session
	err := row.Scan(&s.ID, &s.UserID, &s.Valid, &s.UserAgent, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Session{}, model.ErrNotFound
	}
	return s, err
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) (model.Session, error) {
	query := `INSERT INTO sessions (id, user_id, valid, user_agent)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + sessionColumns

	saved, err := scanSession(r.db.QueryRowContext(ctx, query,
		session.ID, session.UserID, session.Valid, session.UserAgent))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Session{}, model.ErrDuplicate
		}
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}
	return saved, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return s, err
}

// Invalidate clears the valid flag. An already invalid session is left as is.
func (r *SessionRepository) Invalidate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE sessions SET valid = FALSE,
			  updated_at = CASE WHEN valid THEN NOW() ELSE updated_at END
			  WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}
	return affectedOne(res)
}

func (r *SessionRepository) ListValidByUser(ctx context.Context, userID uuid.UUID) ([]model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
			  WHERE user_id = $1 AND valid
			  ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	out := []model.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return out, nil
}
