package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/garden-server/internal/model"
)

var userRowColumns = []string{
	"id", "name", "username", "email", "password_hash", "about", "profile_image", "cover_image", "social", "privacy",
	"is_verified", "is_admin", "two_factor_enabled", "two_factor_secret",
	"followers_amount", "following_users_amount", "total_donated_seed", "created_at", "updated_at",
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func userRows(users ...model.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userRowColumns)
	now := time.Now()
	for _, u := range users {
		rows.AddRow(
			u.ID.String(), u.Name, u.Username, u.Email, u.PasswordHash, "", "", "",
			[]byte(`{"site":"https://example.com"}`), string(u.Privacy),
			u.IsVerified, false, false, "",
			u.FollowersAmount, u.FollowingUsersAmount, int64(0), now, now,
		)
	}
	return rows
}

func sampleUser(username string) model.User {
	return model.User{
		ID:           uuid.New(),
		Name:         username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Privacy:      model.PrivacyPublic,
	}
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	u := sampleUser("alice")

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(u.ID, u.Name, u.Username, u.Email, u.PasswordHash, "", "", "", sqlmock.AnyArg(), "public",
			false, false, false, "").
		WillReturnRows(userRows(u))

	saved, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, u.ID, saved.ID)
	assert.Equal(t, model.PrivacyPublic, saved.Privacy)
	assert.Equal(t, "https://example.com", saved.Social.Site)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), sampleUser("alice"))
	assert.ErrorIs(t, err, model.ErrDuplicate)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	u := sampleUser("alice")

	mock.ExpectQuery(`FROM users WHERE LOWER\(username\) = LOWER\(\$1\)`).
		WithArgs("ALICE").
		WillReturnRows(userRows(u))

	got, err := repo.GetByUsername(context.Background(), "ALICE")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_GetByEmail_DBError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WillReturnError(errors.New("db down"))

	_, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, err.Error(), "db down")
}

func TestUserRepository_Lock_OrdersByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	low := sampleUser("low")
	low.ID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := sampleUser("high")
	high.ID = uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	mock.ExpectQuery(`FOR UPDATE`).WithArgs(low.ID).WillReturnRows(userRows(low))
	mock.ExpectQuery(`FOR UPDATE`).WithArgs(high.ID).WillReturnRows(userRows(high))

	users, err := repo.Lock(context.Background(), high.ID, low.ID)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, high.ID, users[0].ID)
	assert.Equal(t, low.ID, users[1].ID)
}

func TestUserRepository_Lock_Missing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`FOR UPDATE`).WithArgs(id).WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.Lock(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`FROM users ORDER BY created_at`).
		WillReturnRows(userRows(sampleUser("a"), sampleUser("b")))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepository_Update_Duplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`UPDATE users SET name`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Update(context.Background(), sampleUser("alice"))
	assert.ErrorIs(t, err, model.ErrDuplicate)
}

func TestUserRepository_Update_ProfileColumnsOnly(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	user := sampleUser("alice")
	user.PasswordHash = "stale-hash"
	user.IsVerified = true

	mock.ExpectQuery(`UPDATE users SET name = \$2, username = \$3, email = \$4, about = \$5,\s+profile_image = \$6, cover_image = \$7, social = \$8::jsonb, privacy = \$9, updated_at = NOW\(\)`).
		WithArgs(user.ID, user.Name, user.Username, user.Email, "", "", "", sqlmock.AnyArg(), string(user.Privacy)).
		WillReturnRows(userRows(sampleUser("alice")))

	saved, err := repo.Update(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "hash", saved.PasswordHash)
	assert.False(t, saved.IsVerified)
}

func TestUserRepository_SetPasswordHash(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE users SET password_hash = \$2`).
		WithArgs(id, "new-hash").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users SET password_hash = \$2`).
		WithArgs(id, "new-hash").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE users SET password_hash = \$2`).
		WithArgs(id, "new-hash").
		WillReturnError(errors.New("connection reset"))

	require.NoError(t, repo.SetPasswordHash(context.Background(), id, "new-hash"))
	assert.ErrorIs(t, repo.SetPasswordHash(context.Background(), id, "new-hash"), model.ErrNotFound)
	err := repo.SetPasswordHash(context.Background(), id, "new-hash")
	assert.ErrorContains(t, err, "failed to set password hash")
}

func TestUserRepository_SetTwoFactor(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE users SET two_factor_enabled = \$2, two_factor_secret = \$3`).
		WithArgs(id, true, "SECRET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetTwoFactor(context.Background(), id, model.TwoFactor{Enabled: true, Secret: "SECRET"}))
}

func TestUserRepository_SetVerified(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	user := sampleUser("alice")
	user.IsVerified = true

	mock.ExpectQuery(`UPDATE users SET is_verified = \$2, updated_at = NOW\(\) WHERE id = \$1 RETURNING`).
		WithArgs(user.ID, true).
		WillReturnRows(userRows(user))
	mock.ExpectQuery(`UPDATE users SET is_verified`).
		WithArgs(user.ID, false).
		WillReturnError(sql.ErrNoRows)

	saved, err := repo.SetVerified(context.Background(), user.ID, true)
	require.NoError(t, err)
	assert.True(t, saved.IsVerified)

	_, err = repo.SetVerified(context.Background(), user.ID, false)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_AdjustCounters(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE users SET followers_amount = followers_amount \+ \$2`).
		WithArgs(id, 1, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users SET followers_amount`).
		WithArgs(id, 0, -1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.AdjustCounters(context.Background(), id, 1, 0))
	assert.ErrorIs(t, repo.AdjustCounters(context.Background(), id, 0, -1), model.ErrNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))
}
