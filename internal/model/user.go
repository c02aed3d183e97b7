package model

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReservedUsername cannot be registered by anyone.
const ReservedUsername = "private"

// Privacy controls who may see a user's profile.
type Privacy string

const (
	// PrivacyPublic profiles are visible to everyone, including anonymous viewers.
	PrivacyPublic Privacy = "public"
	// PrivacyPrivate profiles are visible to mutual followers only.
	PrivacyPrivate Privacy = "private"
	// PrivacyNone profiles are visible to the owner only.
	PrivacyNone Privacy = "none"
	// PrivacyDonated profiles are visible to mutual followers and matched donators.
	PrivacyDonated Privacy = "donated"
)

// Valid reports whether p is one of the known privacy modes.
func (p Privacy) Valid() bool {
	switch p {
	case PrivacyPublic, PrivacyPrivate, PrivacyNone, PrivacyDonated:
		return true
	}
	return false
}

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	// Lock returns the users in the order of ids, holding them for the rest of
	// the surrounding transaction. Missing users yield ErrNotFound.
	Lock(ctx context.Context, ids ...uuid.UUID) ([]User, error)
	List(ctx context.Context) ([]User, error)
	// Update writes the profile fields only. Credentials, two-factor state,
	// flags and counters each have their own narrow write.
	Update(ctx context.Context, user User) (User, error)
	SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	SetTwoFactor(ctx context.Context, id uuid.UUID, tf TwoFactor) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (User, error)
	// AdjustCounters adds the deltas to the follower and following counters in place.
	AdjustCounters(ctx context.Context, id uuid.UUID, followersDelta, followingDelta int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SocialLinks holds the optional external profile links.
type SocialLinks struct {
	Dribbble  string `json:"dribbble,omitempty"`
	Behance   string `json:"behance,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Site      string `json:"site,omitempty"`
	Tiktok    string `json:"tiktok,omitempty"`
}

// TwoFactor is the stored TOTP state of a user.
type TwoFactor struct {
	Enabled bool
	Secret  string
}

// User represents a stored account together with its graph counters.
type User struct {
	ID                   uuid.UUID
	Name                 string
	Username             string
	Email                string
	PasswordHash         string
	About                string
	ProfileImage         string
	CoverImage           string
	Social               SocialLinks
	Privacy              Privacy
	IsVerified           bool
	IsAdmin              bool
	TwoFactor            TwoFactor
	FollowersAmount      int
	FollowingUsersAmount int
	TotalDonatedSeed     int64
	Relations            Relations
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Relations are the edge sets of a user, projected from the graph tables.
type Relations struct {
	Followers              []uuid.UUID
	FollowingUsers         []uuid.UUID
	BlockedUsers           []uuid.UUID
	BlockedBy              []uuid.UUID
	FollowRequestsSent     []uuid.UUID
	FollowRequestsReceived []uuid.UUID
}

// IsFollowing reports whether the user follows id.
func (r Relations) IsFollowing(id uuid.UUID) bool {
	return slices.Contains(r.FollowingUsers, id)
}

// HasFollower reports whether id follows the user.
func (r Relations) HasFollower(id uuid.UUID) bool {
	return slices.Contains(r.Followers, id)
}

// HasBlocked reports whether the user blocked id.
func (r Relations) HasBlocked(id uuid.UUID) bool {
	return slices.Contains(r.BlockedUsers, id)
}

// IsFriendOf reports a bidirectional follow edge with id.
func (r Relations) IsFriendOf(id uuid.UUID) bool {
	return r.IsFollowing(id) && r.HasFollower(id)
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsReservedUsername reports whether username collides with a reserved word.
func IsReservedUsername(username string) bool {
	return strings.EqualFold(strings.TrimSpace(username), ReservedUsername)
}

// UserSummary is a compact view of a related user.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	ProfileImage string    `json:"profile_image,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	// IsFollowing is set on follower lists when the follow is mutual.
	IsFollowing bool `json:"is_following"`
}
