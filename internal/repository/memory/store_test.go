package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/garden-server/internal/model"
)

func newUser(username string) model.User {
	return model.User{
		ID:       uuid.New(),
		Name:     username,
		Username: username,
		Email:    username + "@example.com",
		Privacy:  model.PrivacyPublic,
	}
}

func TestStore_UserUniqueness(t *testing.T) {
	ctx := context.Background()
	s := New()

	alice, err := s.Users().Create(ctx, newUser("alice"))
	require.NoError(t, err)

	dup := newUser("ALICE")
	_, err = s.Users().Create(ctx, dup)
	assert.ErrorIs(t, err, model.ErrDuplicate)

	byName, err := s.Users().GetByUsername(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	_, err = s.Users().GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestStore_WithinTx_Rollback(t *testing.T) {
	ctx := context.Background()
	s := New()

	a, err := s.Users().Create(ctx, newUser("a"))
	require.NoError(t, err)
	b, err := s.Users().Create(ctx, newUser("b"))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		require.NoError(t, tx.Graph().AddFollow(ctx, a.ID, b.ID))
		require.NoError(t, tx.Users().AdjustCounters(ctx, a.ID, 0, 1))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	following, err := s.Graph().IsFollowing(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)

	got, err := s.Users().GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.FollowingUsersAmount)
}

func TestStore_WithinTx_Commit(t *testing.T) {
	ctx := context.Background()
	s := New()

	a, _ := s.Users().Create(ctx, newUser("a"))
	b, _ := s.Users().Create(ctx, newUser("b"))

	err := s.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		users, err := tx.Users().Lock(ctx, a.ID, b.ID)
		require.NoError(t, err)
		require.Len(t, users, 2)
		return tx.Graph().AddFollow(ctx, a.ID, b.ID)
	})
	require.NoError(t, err)

	rel, err := s.Graph().Relations(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID}, rel.Followers)
}

func TestStore_Graph(t *testing.T) {
	ctx := context.Background()
	s := New()

	a, _ := s.Users().Create(ctx, newUser("a"))
	b, _ := s.Users().Create(ctx, newUser("b"))

	require.NoError(t, s.Graph().AddFollow(ctx, a.ID, b.ID))
	assert.ErrorIs(t, s.Graph().AddFollow(ctx, a.ID, b.ID), model.ErrDuplicate)
	require.NoError(t, s.Graph().AddFollow(ctx, b.ID, a.ID))

	followers, err := s.Graph().Followers(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, b.ID, followers[0].ID)
	assert.True(t, followers[0].IsFollowing)

	require.NoError(t, s.Graph().RemoveFollow(ctx, a.ID, b.ID))
	assert.ErrorIs(t, s.Graph().RemoveFollow(ctx, a.ID, b.ID), model.ErrNotFound)

	followers, err = s.Graph().Followers(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.False(t, followers[0].IsFollowing)

	require.NoError(t, s.Graph().AddBlock(ctx, a.ID, b.ID))
	blocked, err := s.Graph().IsBlocked(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, blocked)

	rel, err := s.Graph().Relations(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID}, rel.BlockedBy)
}

func TestStore_DeleteUserDropsEdges(t *testing.T) {
	ctx := context.Background()
	s := New()

	a, _ := s.Users().Create(ctx, newUser("a"))
	b, _ := s.Users().Create(ctx, newUser("b"))
	require.NoError(t, s.Graph().AddFollow(ctx, a.ID, b.ID))
	_, err := s.FollowRequests().Create(ctx, model.FollowRequest{ID: uuid.New(), FromID: b.ID, ToID: a.ID, Status: model.RequestPending})
	require.NoError(t, err)

	require.NoError(t, s.Users().Delete(ctx, a.ID))

	rel, err := s.Graph().Relations(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, rel.Followers)
	assert.Empty(t, rel.FollowRequestsSent)
}

func TestStore_Sessions(t *testing.T) {
	ctx := context.Background()
	s := New()
	userID := uuid.New()

	sess, err := s.Sessions().Create(ctx, model.Session{ID: uuid.New(), UserID: userID, Valid: true})
	require.NoError(t, err)

	require.NoError(t, s.Sessions().Invalidate(ctx, sess.ID))
	require.NoError(t, s.Sessions().Invalidate(ctx, sess.ID))
	assert.ErrorIs(t, s.Sessions().Invalidate(ctx, uuid.New()), model.ErrNotFound)

	got, err := s.Sessions().GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, got.Valid)

	valid, err := s.Sessions().ListValidByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, valid)
}

func TestStore_UpdateLeavesCredentialsAlone(t *testing.T) {
	ctx := context.Background()
	s := New()

	u := newUser("alice")
	u.PasswordHash = "hash-1"
	alice, err := s.Users().Create(ctx, u)
	require.NoError(t, err)

	stale := alice
	require.NoError(t, s.Users().SetPasswordHash(ctx, alice.ID, "hash-2"))
	require.NoError(t, s.Users().SetTwoFactor(ctx, alice.ID, model.TwoFactor{Enabled: true, Secret: "SECRET"}))
	verified, err := s.Users().SetVerified(ctx, alice.ID, true)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	stale.About = "gardener"
	stale.IsAdmin = true
	updated, err := s.Users().Update(ctx, stale)
	require.NoError(t, err)
	assert.Equal(t, "gardener", updated.About)
	assert.Equal(t, "hash-2", updated.PasswordHash)
	assert.True(t, updated.TwoFactor.Enabled)
	assert.True(t, updated.IsVerified)
	assert.False(t, updated.IsAdmin)

	assert.ErrorIs(t, s.Users().SetPasswordHash(ctx, uuid.New(), "x"), model.ErrNotFound)
	_, err = s.Users().SetVerified(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
