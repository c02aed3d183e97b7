// Package privacy decides whether a viewer may see a profile.
package privacy

import (
	"context"
	"fmt"

	"github.com/dtroode/garden-server/internal/model"
)

// Decision is the outcome of a visibility check.
type Decision struct {
	Visible          bool
	IsOwner          bool
	IsFriend         bool
	IsMatchedDonator bool
}

// Resolver applies the profile privacy rules.
type Resolver struct {
	donations model.DonationMatcher
}

// NewResolver creates a Resolver. A nil matcher never matches.
func NewResolver(donations model.DonationMatcher) *Resolver {
	if donations == nil {
		donations = NoDonations{}
	}
	return &Resolver{donations: donations}
}

// Resolve decides whether viewer may see owner. viewer is nil for anonymous
// callers. owner.Relations must be loaded.
func (r *Resolver) Resolve(ctx context.Context, viewer *model.User, owner model.User) (Decision, error) {
	if viewer != nil && viewer.ID == owner.ID {
		return Decision{Visible: true, IsOwner: true}, nil
	}

	var d Decision
	if viewer != nil {
		d.IsFriend = owner.Relations.IsFriendOf(viewer.ID)
	}

	switch owner.Privacy {
	case model.PrivacyNone:
		return d, nil
	case model.PrivacyPublic, "":
		d.Visible = true
		return d, nil
	}

	if viewer == nil {
		return d, nil
	}

	switch owner.Privacy {
	case model.PrivacyPrivate:
		d.Visible = d.IsFriend
	case model.PrivacyDonated:
		matched, err := r.donations.IsMatchedDonator(ctx, *viewer, owner)
		if err != nil {
			return Decision{}, fmt.Errorf("failed to match donator: %w", err)
		}
		d.IsMatchedDonator = matched
		d.Visible = d.IsFriend || matched
	}

	return d, nil
}

// NoDonations is the matcher used when no donation subsystem is wired.
type NoDonations struct{}

// IsMatchedDonator always reports false.
func (NoDonations) IsMatchedDonator(context.Context, model.User, model.User) (bool, error) {
	return false, nil
}
