package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/model"
)

func TestGraph_FollowUnfollow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")
	bob := env.signUp(t, "bob")

	require.NoError(t, env.graph.Follow(ctx, alice.ID, bob.ID))
	assert.Equal(t, 1, env.reload(t, alice).FollowingUsersAmount)
	assert.Equal(t, 1, env.reload(t, bob).FollowersAmount)

	err := env.graph.Follow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, apiErrors.ErrAlreadyFollowing)
	assert.Equal(t, 1, env.reload(t, bob).FollowersAmount)

	require.NoError(t, env.graph.Unfollow(ctx, alice.ID, bob.ID))
	assert.Equal(t, 0, env.reload(t, alice).FollowingUsersAmount)
	assert.Equal(t, 0, env.reload(t, bob).FollowersAmount)

	err = env.graph.Unfollow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, apiErrors.ErrNotFollowing)

	stats, err := env.graph.GetFollowerStatistics(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, stats.Followers)
}

func TestGraph_Errors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")
	ghost := uuid.New()

	assert.ErrorIs(t, env.graph.Follow(ctx, alice.ID, alice.ID), apiErrors.ErrSelfAction)
	assert.ErrorIs(t, env.graph.Block(ctx, alice.ID, alice.ID), apiErrors.ErrSelfAction)
	assert.ErrorIs(t, env.graph.Follow(ctx, alice.ID, ghost), apiErrors.ErrUserNotFound)
	assert.ErrorIs(t, env.graph.Follow(ctx, ghost, alice.ID), apiErrors.ErrUserNotFound)
	assert.ErrorIs(t, env.graph.Unblock(ctx, alice.ID, ghost), apiErrors.ErrUserNotFound)

	_, err := env.graph.SendFollowRequest(ctx, alice.ID, ghost)
	assert.ErrorIs(t, err, apiErrors.ErrUserNotFound)

	_, err = env.graph.GetFollowerStatistics(ctx, ghost)
	assert.ErrorIs(t, err, apiErrors.ErrUserNotFound)

	assert.Equal(t, 0, env.reload(t, alice).FollowingUsersAmount)
}

func TestGraph_BlockKeepsFollowEdges(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")
	bob := env.signUp(t, "bob")

	require.NoError(t, env.graph.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, env.graph.Block(ctx, bob.ID, alice.ID))
	assert.ErrorIs(t, env.graph.Block(ctx, bob.ID, alice.ID), apiErrors.ErrAlreadyBlocked)

	stats, err := env.graph.GetFollowerStatistics(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FollowersAmount)
	assert.Equal(t, []uuid.UUID{alice.ID}, stats.Followers)
	assert.Equal(t, []uuid.UUID{alice.ID}, stats.BlockedUsers)

	aliceStats, err := env.graph.GetFollowerStatistics(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{bob.ID}, aliceStats.UserBlockedBy)

	blocked, err := env.graph.ListBlocked(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	assert.Equal(t, "alice", blocked[0].Username)

	require.NoError(t, env.graph.Unblock(ctx, bob.ID, alice.ID))
	assert.ErrorIs(t, env.graph.Unblock(ctx, bob.ID, alice.ID), apiErrors.ErrNotBlocked)
}

func TestGraph_SendFollowRequest(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")
	bob := env.signUp(t, "bob")
	carol := env.signUp(t, "carol")

	req, err := env.graph.SendFollowRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestPending, req.Status)

	_, err = env.graph.SendFollowRequest(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, apiErrors.ErrRequestPending)

	require.NoError(t, env.graph.Block(ctx, carol.ID, alice.ID))
	_, err = env.graph.SendFollowRequest(ctx, alice.ID, carol.ID)
	assert.ErrorIs(t, err, apiErrors.ErrBlocked)

	require.NoError(t, env.graph.Follow(ctx, bob.ID, carol.ID))
	_, err = env.graph.SendFollowRequest(ctx, bob.ID, carol.ID)
	assert.ErrorIs(t, err, apiErrors.ErrAlreadyFollowing)

	pending, err := env.graph.ListPendingFollowRequests(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, req.ID, pending[0].ID)

	rel, err := env.store.Graph().Relations(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{req.ID}, rel.FollowRequestsSent)
	rel, err = env.store.Graph().Relations(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{req.ID}, rel.FollowRequestsReceived)
}

func TestGraph_UpdateRequestStatus(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")
	bob := env.signUp(t, "bob")
	carol := env.signUp(t, "carol")

	req, err := env.graph.SendFollowRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = env.graph.UpdateRequestStatus(ctx, req.ID, bob.ID, model.RequestPending)
	assert.ErrorIs(t, err, apiErrors.ErrInvalidStatus)

	_, err = env.graph.UpdateRequestStatus(ctx, req.ID, alice.ID, model.RequestAccepted)
	assert.ErrorIs(t, err, apiErrors.ErrNotRequestTarget)

	_, err = env.graph.UpdateRequestStatus(ctx, uuid.New(), bob.ID, model.RequestAccepted)
	assert.ErrorIs(t, err, apiErrors.ErrRequestNotFound)

	_, err = env.graph.GetFollowRequest(ctx, req.ID, carol.ID)
	assert.ErrorIs(t, err, apiErrors.ErrForbidden)

	accepted, err := env.graph.UpdateRequestStatus(ctx, req.ID, bob.ID, model.RequestAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.RequestAccepted, accepted.Status)

	following, err := env.store.Graph().IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)
	assert.Equal(t, 1, env.reload(t, bob).FollowersAmount)

	_, err = env.graph.UpdateRequestStatus(ctx, req.ID, bob.ID, model.RequestDeclined)
	assert.ErrorIs(t, err, apiErrors.ErrRequestResolved)

	got, err := env.graph.GetFollowRequest(ctx, req.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestAccepted, got.Status)
}

func TestGraph_DeclineLeavesGraphUnchanged(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")
	bob := env.signUp(t, "bob")

	req, err := env.graph.SendFollowRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	declined, err := env.graph.UpdateRequestStatus(ctx, req.ID, bob.ID, model.RequestDeclined)
	require.NoError(t, err)
	assert.Equal(t, model.RequestDeclined, declined.Status)
	assert.Equal(t, 0, env.reload(t, bob).FollowersAmount)

	// a declined request does not block a new one
	_, err = env.graph.SendFollowRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
}

func TestGraph_AcceptAfterDirectFollow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")
	bob := env.signUp(t, "bob")

	req, err := env.graph.SendFollowRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, env.graph.Follow(ctx, alice.ID, bob.ID))

	_, err = env.graph.UpdateRequestStatus(ctx, req.ID, bob.ID, model.RequestAccepted)
	require.NoError(t, err)
	assert.Equal(t, 1, env.reload(t, bob).FollowersAmount)
	assert.Equal(t, 1, env.reload(t, alice).FollowingUsersAmount)
}

func TestGraph_ListFollowers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")
	bob := env.signUp(t, "bob")
	carol := env.signUp(t, "carol")

	require.NoError(t, env.graph.Follow(ctx, bob.ID, alice.ID))
	require.NoError(t, env.graph.Follow(ctx, carol.ID, alice.ID))
	require.NoError(t, env.graph.Follow(ctx, alice.ID, bob.ID))

	followers, err := env.graph.ListFollowers(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	mutual := map[string]bool{}
	for _, f := range followers {
		mutual[f.Username] = f.IsFollowing
	}
	assert.Equal(t, map[string]bool{"bob": true, "carol": false}, mutual)

	following, err := env.graph.ListFollowing(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, bob.ID, following[0].ID)

	_, err = env.graph.ListFollowers(ctx, uuid.New())
	assert.ErrorIs(t, err, apiErrors.ErrUserNotFound)
}

// Counters must equal edge counts after any sequence of graph operations.
func TestGraph_CountersMatchEdges(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	users := []model.User{
		env.signUp(t, "alice"),
		env.signUp(t, "bob"),
		env.signUp(t, "carol"),
		env.signUp(t, "dave"),
	}

	ops := []struct {
		follow   bool
		from, to int
	}{
		{true, 0, 1}, {true, 0, 2}, {true, 1, 0}, {true, 2, 0}, {true, 3, 0},
		{false, 0, 2}, {true, 3, 1}, {false, 1, 0}, {true, 1, 0}, {true, 0, 3},
	}
	for _, op := range ops {
		if op.follow {
			require.NoError(t, env.graph.Follow(ctx, users[op.from].ID, users[op.to].ID))
		} else {
			require.NoError(t, env.graph.Unfollow(ctx, users[op.from].ID, users[op.to].ID))
		}
	}

	for _, u := range users {
		stats, err := env.graph.GetFollowerStatistics(ctx, u.ID)
		require.NoError(t, err)
		assert.Len(t, stats.Followers, stats.FollowersAmount, u.Username)
		assert.Len(t, stats.FollowingUsers, stats.FollowingUsersAmount, u.Username)
	}
}

func TestGraph_ConcurrentFollowsKeepCounters(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	users := []model.User{
		env.signUp(t, "alice"),
		env.signUp(t, "bob"),
		env.signUp(t, "carol"),
	}

	// every worker hammers the same pair and pairs crossing it in both directions
	pairs := [][2]int{{0, 1}, {1, 0}, {0, 2}, {2, 0}, {1, 2}, {2, 1}}
	const workers = 8
	const rounds = 25

	var wg sync.WaitGroup
	errs := make(chan error, workers*rounds*len(pairs))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				for i, p := range pairs {
					from, to := users[p[0]].ID, users[p[1]].ID
					var err error
					if (w+r+i)%2 == 0 {
						err = env.graph.Follow(ctx, from, to)
					} else {
						err = env.graph.Unfollow(ctx, from, to)
					}
					if err != nil && !errors.Is(err, apiErrors.ErrAlreadyFollowing) && !errors.Is(err, apiErrors.ErrNotFollowing) {
						errs <- err
					}
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected graph error: %v", err)
	}

	for _, u := range users {
		stored := env.reload(t, u)
		rel, err := env.store.Graph().Relations(ctx, u.ID)
		require.NoError(t, err)
		assert.Len(t, rel.Followers, stored.FollowersAmount, u.Username)
		assert.Len(t, rel.FollowingUsers, stored.FollowingUsersAmount, u.Username)
		assert.GreaterOrEqual(t, stored.FollowersAmount, 0, u.Username)
		assert.GreaterOrEqual(t, stored.FollowingUsersAmount, 0, u.Username)
	}
}
