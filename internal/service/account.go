package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/model"
	"github.com/dtroode/garden-server/internal/privacy"
)

// ImageKind selects which profile image an upload replaces.
type ImageKind string

const (
	ImageProfile ImageKind = "profile"
	ImageCover   ImageKind = "cover"
)

// ProfilePatch carries the profile fields to change. Nil fields are left as is.
type ProfilePatch struct {
	Name     *string `validate:"omitempty,max=100"`
	Username *string `validate:"omitempty,min=2,max=50,alphanum"`
	Email    *string `validate:"omitempty,email"`
	About    *string `validate:"omitempty,max=1000"`
	Social   *model.SocialLinks
	Privacy  *model.Privacy
	Password *string `validate:"omitempty,min=8,max=72"`
}

// UserDetails is a profile as seen by a particular viewer.
type UserDetails struct {
	User             model.User
	IsOwner          bool
	IsFriend         bool
	IsMatchedDonator bool
	Followers        []model.UserSummary
	Following        []model.UserSummary
}

// Account implements profile management, privacy-gated profile reads and
// the admin verification flags.
type Account struct {
	store    model.Store
	hasher   model.PasswordHasher
	storage  model.Storage
	resolver *privacy.Resolver
	validate *validator.Validate
	logger   *logger.Logger
}

func NewAccount(store model.Store, hasher model.PasswordHasher, storage model.Storage, resolver *privacy.Resolver, logger *logger.Logger) *Account {
	return &Account{
		store:    store,
		hasher:   hasher,
		storage:  storage,
		resolver: resolver,
		validate: newValidator(),
		logger:   logger,
	}
}

// Me returns the caller's own profile with its relations.
func (a *Account) Me(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := getUser(ctx, a.store, userID)
	if err != nil {
		return model.User{}, err
	}
	return withRelations(ctx, a.store, user)
}

// UpdateProfile applies patch to the caller's profile.
func (a *Account) UpdateProfile(ctx context.Context, userID uuid.UUID, patch ProfilePatch) (model.User, error) {
	if patch.Email != nil {
		email := model.NormalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		patch.Username = &username
	}

	if err := a.validate.Struct(patch); err != nil {
		return model.User{}, validationError(err)
	}
	if patch.Privacy != nil && !patch.Privacy.Valid() {
		return model.User{}, apiErrors.ErrValidation.WithMessage("privacy must be one of public, private, none, donated")
	}
	if patch.Username != nil && model.IsReservedUsername(*patch.Username) {
		return model.User{}, apiErrors.ErrUsernameReserved
	}

	var hash string
	if patch.Password != nil {
		h, err := a.hasher.Hash(*patch.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hash = h
	}

	var updated model.User
	err := a.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		user, err := lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		if patch.Email != nil && *patch.Email != user.Email {
			if err := a.ensureFree(ctx, tx.Users().GetByEmail, *patch.Email, userID, apiErrors.ErrEmailTaken); err != nil {
				return err
			}
			user.Email = *patch.Email
		}
		if patch.Username != nil && !strings.EqualFold(*patch.Username, user.Username) {
			if err := a.ensureFree(ctx, tx.Users().GetByUsername, *patch.Username, userID, apiErrors.ErrUsernameTaken); err != nil {
				return err
			}
		}
		if patch.Username != nil {
			user.Username = *patch.Username
		}
		if patch.Name != nil {
			user.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.About != nil {
			user.About = *patch.About
		}
		if patch.Social != nil {
			user.Social = *patch.Social
		}
		if patch.Privacy != nil {
			user.Privacy = *patch.Privacy
		}

		updated, err = tx.Users().Update(ctx, user)
		if errors.Is(err, model.ErrDuplicate) {
			return apiErrors.ErrIdentityTaken
		}
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		if hash != "" {
			if err := tx.Users().SetPasswordHash(ctx, userID, hash); err != nil {
				return fmt.Errorf("failed to update password: %w", err)
			}
			updated.PasswordHash = hash
		}
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	a.logger.Info("Account service: profile updated",
		"user_id", userID,
		"password_changed", hash != "")

	return withRelations(ctx, a.store, updated)
}

// Delete removes the account, its edges, requests and sessions, and
// corrects the counters of everyone it was connected to.
func (a *Account) Delete(ctx context.Context, userID uuid.UUID) error {
	var user model.User
	err := a.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		users, err := tx.Users().Lock(ctx, userID)
		if errors.Is(err, model.ErrNotFound) {
			return apiErrors.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock user: %w", err)
		}
		user = users[0]

		rel, err := tx.Graph().Relations(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load relations: %w", err)
		}
		for _, id := range rel.Followers {
			if err := tx.Users().AdjustCounters(ctx, id, 0, -1); err != nil {
				return fmt.Errorf("failed to update following counter: %w", err)
			}
		}
		for _, id := range rel.FollowingUsers {
			if err := tx.Users().AdjustCounters(ctx, id, -1, 0); err != nil {
				return fmt.Errorf("failed to update followers counter: %w", err)
			}
		}

		if err := tx.Users().Delete(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, key := range []string{user.ProfileImage, user.CoverImage} {
		a.removeImage(ctx, key)
	}

	a.logger.Info("Account service: account deleted",
		"user_id", userID)

	return nil
}

// GetUserDetails returns the profile of userID as seen by viewer. Profiles
// hidden from everyone read as missing.
func (a *Account) GetUserDetails(ctx context.Context, viewer model.Identity, userID uuid.UUID) (UserDetails, error) {
	owner, err := getUser(ctx, a.store, userID)
	if err != nil {
		return UserDetails{}, err
	}
	if owner, err = withRelations(ctx, a.store, owner); err != nil {
		return UserDetails{}, err
	}

	var viewerUser *model.User
	if !viewer.Anonymous() {
		v, err := a.store.Users().GetByID(ctx, viewer.UserID)
		switch {
		case err == nil:
			viewerUser = &v
		case !errors.Is(err, model.ErrNotFound):
			return UserDetails{}, fmt.Errorf("failed to get viewer: %w", err)
		}
	}

	decision, err := a.resolver.Resolve(ctx, viewerUser, owner)
	if err != nil {
		return UserDetails{}, fmt.Errorf("failed to resolve privacy: %w", err)
	}
	if !decision.Visible {
		if owner.Privacy == model.PrivacyNone {
			return UserDetails{}, apiErrors.ErrUserNotFound
		}
		return UserDetails{}, apiErrors.ErrProfileNotVisible
	}

	followers, err := a.store.Graph().Followers(ctx, userID)
	if err != nil {
		return UserDetails{}, fmt.Errorf("failed to list followers: %w", err)
	}
	following, err := a.store.Graph().Following(ctx, userID)
	if err != nil {
		return UserDetails{}, fmt.Errorf("failed to list following: %w", err)
	}

	return UserDetails{
		User:             owner,
		IsOwner:          decision.IsOwner,
		IsFriend:         decision.IsFriend,
		IsMatchedDonator: decision.IsMatchedDonator,
		Followers:        followers,
		Following:        following,
	}, nil
}

// ListUsers returns every account. Admin only.
func (a *Account) ListUsers(ctx context.Context, actorID uuid.UUID) ([]model.User, error) {
	if err := a.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	users, err := a.store.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// VerifyUser sets the verified badge. Admin only.
func (a *Account) VerifyUser(ctx context.Context, actorID, userID uuid.UUID) (model.User, error) {
	return a.setVerified(ctx, actorID, userID, true)
}

// UnverifyUser clears the verified badge. Admin only.
func (a *Account) UnverifyUser(ctx context.Context, actorID, userID uuid.UUID) (model.User, error) {
	return a.setVerified(ctx, actorID, userID, false)
}

// UploadImage stores a new profile or cover image and replaces the previous one.
func (a *Account) UploadImage(ctx context.Context, userID uuid.UUID, kind ImageKind, r io.Reader, size int64, contentType string) (model.User, error) {
	if kind != ImageProfile && kind != ImageCover {
		return model.User{}, apiErrors.ErrValidation.WithMessage("image kind must be profile or cover")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return model.User{}, apiErrors.ErrValidation.WithMessage("content type must be an image")
	}

	if _, err := getUser(ctx, a.store, userID); err != nil {
		return model.User{}, err
	}

	key := fmt.Sprintf("users/%s/%s-%s", userID, kind, uuid.New())
	if err := a.storage.Upload(ctx, key, r, size, contentType); err != nil {
		return model.User{}, fmt.Errorf("failed to upload image: %w", err)
	}

	var (
		updated  model.User
		previous string
	)
	err := a.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		user, err := lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		if kind == ImageProfile {
			previous, user.ProfileImage = user.ProfileImage, key
		} else {
			previous, user.CoverImage = user.CoverImage, key
		}
		updated, err = tx.Users().Update(ctx, user)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		a.removeImage(ctx, key)
		return model.User{}, err
	}
	a.removeImage(ctx, previous)

	a.logger.Info("Account service: image uploaded",
		"user_id", userID,
		"kind", kind,
		"key", key)

	return updated, nil
}

// GetImage opens a stored image.
func (a *Account) GetImage(ctx context.Context, key string) (io.ReadCloser, error) {
	exists, err := a.storage.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check image: %w", err)
	}
	if !exists {
		return nil, apiErrors.ErrImageNotFound
	}
	return a.storage.Download(ctx, key)
}

func (a *Account) setVerified(ctx context.Context, actorID, userID uuid.UUID, verified bool) (model.User, error) {
	if err := a.requireAdmin(ctx, actorID); err != nil {
		return model.User{}, err
	}

	var updated model.User
	err := a.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		user, err := lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		if user.IsVerified == verified {
			if verified {
				return apiErrors.ErrAlreadyVerified
			}
			return apiErrors.ErrNotVerified
		}

		updated, err = tx.Users().SetVerified(ctx, userID, verified)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	a.logger.Info("Account service: verification changed",
		"actor_id", actorID,
		"user_id", userID,
		"verified", verified)

	return updated, nil
}

// requireAdmin checks the stored flag rather than the token claim, so a
// revoked admin loses access before the token expires.
func (a *Account) requireAdmin(ctx context.Context, actorID uuid.UUID) error {
	actor, err := a.store.Users().GetByID(ctx, actorID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.ErrForbidden
	}
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !actor.IsAdmin {
		return apiErrors.ErrForbidden
	}
	return nil
}

func (a *Account) ensureFree(ctx context.Context, get func(context.Context, string) (model.User, error), value string, self uuid.UUID, taken error) error {
	other, err := get(ctx, value)
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check availability: %w", err)
	}
	if other.ID != self {
		return taken
	}
	return nil
}

func (a *Account) removeImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := a.storage.Delete(ctx, key); err != nil {
		a.logger.Warn("Account service: failed to delete image",
			"key", key,
			"error", err.Error())
	}
}
