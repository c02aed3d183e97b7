package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dtroode/garden-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, name, username, email, password_hash, about, profile_image, cover_image, social, privacy,
	is_verified, is_admin, two_factor_enabled, two_factor_secret,
	followers_amount, following_users_amount, total_donated_seed, created_at, updated_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (model.User, error) {
	var (
		user   model.User
		social []byte
	)
	err := row.Scan(
		&user.ID, &user.Name, &user.Username, &user.Email, &user.PasswordHash, &user.About,
		&user.ProfileImage, &user.CoverImage, &social, &user.Privacy,
		&user.IsVerified, &user.IsAdmin, &user.TwoFactor.Enabled, &user.TwoFactor.Secret,
		&user.FollowersAmount, &user.FollowingUsersAmount, &user.TotalDonatedSeed,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}
	if len(social) > 0 {
		if err := json.Unmarshal(social, &user.Social); err != nil {
			return model.User{}, fmt.Errorf("failed to decode social links: %w", err)
		}
	}
	return user, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (model.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	social, err := json.Marshal(user.Social)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to encode social links: %w", err)
	}

	query := `INSERT INTO users (id, name, username, email, password_hash, about, profile_image, cover_image,
			  social, privacy, is_verified, is_admin, two_factor_enabled, two_factor_secret)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11, $12, $13, $14)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Username, user.Email, user.PasswordHash, user.About,
		user.ProfileImage, user.CoverImage, string(social), string(user.Privacy),
		user.IsVerified, user.IsAdmin, user.TwoFactor.Enabled, user.TwoFactor.Secret,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrDuplicate
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := r.getOne(ctx, query, id)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := r.getOne(ctx, query, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, err
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(username) = LOWER($1)`

	user, err := r.getOne(ctx, query, username)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, err
}

// Lock takes row locks in id order, whatever order ids come in, so two
// transactions locking the same pair cannot deadlock.
func (r *UserRepository) Lock(ctx context.Context, ids ...uuid.UUID) ([]model.User, error) {
	ordered := slices.Clone(ids)
	slices.SortFunc(ordered, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	locked := make(map[uuid.UUID]model.User, len(ordered))
	for _, id := range ordered {
		if _, ok := locked[id]; ok {
			continue
		}
		user, err := r.getOne(ctx, query, id)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to lock user: %w", err)
		}
		locked[id] = user
	}

	out := make([]model.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, locked[id])
	}
	return out, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// Update writes the profile columns. Credentials, flags and counters are
// left to their own writes so a stale profile cannot overwrite them.
func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	social, err := json.Marshal(user.Social)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to encode social links: %w", err)
	}

	query := `UPDATE users SET name = $2, username = $3, email = $4, about = $5,
			  profile_image = $6, cover_image = $7, social = $8::jsonb, privacy = $9, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	saved, err := r.getOne(ctx, query,
		user.ID, user.Name, user.Username, user.Email, user.About,
		user.ProfileImage, user.CoverImage, string(social), string(user.Privacy),
	)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		if isUniqueViolation(err) {
			return model.User{}, model.ErrDuplicate
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, hash)
	if err != nil {
		return fmt.Errorf("failed to set password hash: %w", err)
	}
	return affectedOne(res)
}

func (r *UserRepository) SetTwoFactor(ctx context.Context, id uuid.UUID, tf model.TwoFactor) error {
	query := `UPDATE users SET two_factor_enabled = $2, two_factor_secret = $3, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, tf.Enabled, tf.Secret)
	if err != nil {
		return fmt.Errorf("failed to set two-factor state: %w", err)
	}
	return affectedOne(res)
}

func (r *UserRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (model.User, error) {
	query := `UPDATE users SET is_verified = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + userColumns

	user, err := r.getOne(ctx, query, id, verified)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to set verified flag: %w", err)
	}
	return user, err
}

func (r *UserRepository) AdjustCounters(ctx context.Context, id uuid.UUID, followersDelta, followingDelta int) error {
	query := `UPDATE users SET followers_amount = followers_amount + $2,
			  following_users_amount = following_users_amount + $3, updated_at = NOW()
			  WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, followersDelta, followingDelta)
	if err != nil {
		return fmt.Errorf("failed to adjust counters: %w", err)
	}
	return affectedOne(res)
}

// Delete removes the user; edges, requests and sessions cascade.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return affectedOne(res)
}
