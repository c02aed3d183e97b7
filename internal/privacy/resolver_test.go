package privacy

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/garden-server/internal/mocks"
	"github.com/dtroode/garden-server/internal/model"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	viewer := model.User{ID: uuid.New()}
	ownerID := uuid.New()

	mutual := model.Relations{Followers: []uuid.UUID{viewer.ID}, FollowingUsers: []uuid.UUID{viewer.ID}}
	followerOnly := model.Relations{Followers: []uuid.UUID{viewer.ID}}

	tests := []struct {
		name        string
		viewer      *model.User
		privacy     model.Privacy
		relations   model.Relations
		wantVisible bool
		wantFriend  bool
	}{
		{name: "public anonymous", viewer: nil, privacy: model.PrivacyPublic, wantVisible: true},
		{name: "public stranger", viewer: &viewer, privacy: model.PrivacyPublic, wantVisible: true},
		{name: "private anonymous", viewer: nil, privacy: model.PrivacyPrivate, relations: mutual, wantVisible: false},
		{name: "private follower only", viewer: &viewer, privacy: model.PrivacyPrivate, relations: followerOnly, wantVisible: false},
		{name: "private friend", viewer: &viewer, privacy: model.PrivacyPrivate, relations: mutual, wantVisible: true, wantFriend: true},
		{name: "none friend", viewer: &viewer, privacy: model.PrivacyNone, relations: mutual, wantVisible: false, wantFriend: true},
		{name: "none anonymous", viewer: nil, privacy: model.PrivacyNone, wantVisible: false},
		{name: "donated anonymous", viewer: nil, privacy: model.PrivacyDonated, relations: mutual, wantVisible: false},
		{name: "donated friend", viewer: &viewer, privacy: model.PrivacyDonated, relations: mutual, wantVisible: true, wantFriend: true},
		{name: "donated stranger", viewer: &viewer, privacy: model.PrivacyDonated, wantVisible: false},
	}

	r := NewResolver(nil)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			owner := model.User{ID: ownerID, Privacy: tt.privacy, Relations: tt.relations}

			d, err := r.Resolve(context.Background(), tt.viewer, owner)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVisible, d.Visible)
			assert.Equal(t, tt.wantFriend, d.IsFriend)
			assert.False(t, d.IsOwner)
		})
	}
}

func TestResolver_Owner(t *testing.T) {
	t.Parallel()

	owner := model.User{ID: uuid.New(), Privacy: model.PrivacyNone}
	d, err := NewResolver(nil).Resolve(context.Background(), &owner, owner)
	require.NoError(t, err)
	assert.True(t, d.Visible)
	assert.True(t, d.IsOwner)
}

func TestResolver_MatchedDonator(t *testing.T) {
	t.Parallel()

	viewer := model.User{ID: uuid.New()}
	owner := model.User{ID: uuid.New(), Privacy: model.PrivacyDonated}

	matcher := mocks.NewDonationMatcher(t)
	matcher.On("IsMatchedDonator", mock.Anything, viewer, owner).Return(true, nil)

	d, err := NewResolver(matcher).Resolve(context.Background(), &viewer, owner)
	require.NoError(t, err)
	assert.True(t, d.Visible)
	assert.True(t, d.IsMatchedDonator)
	assert.False(t, d.IsFriend)
}

func TestResolver_MatcherError(t *testing.T) {
	t.Parallel()

	viewer := model.User{ID: uuid.New()}
	owner := model.User{ID: uuid.New(), Privacy: model.PrivacyDonated}

	matcher := mocks.NewDonationMatcher(t)
	matcher.On("IsMatchedDonator", mock.Anything, viewer, owner).Return(false, assert.AnError)

	_, err := NewResolver(matcher).Resolve(context.Background(), &viewer, owner)
	assert.ErrorIs(t, err, assert.AnError)
}
