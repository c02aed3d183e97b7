package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/model"
)

// TokenConfig holds token lifetimes and the material recovery links are built from.
type TokenConfig struct {
	Secret      string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	RecoveryTTL time.Duration
	// PublicURL is the base of recovery links.
	PublicURL string
}

// TokenService issues session tokens, reissues access tokens from refresh
// tokens, builds recovery links and resolves request identities.
type TokenService struct {
	manager model.TokenManager
	store   model.Store
	cfg     TokenConfig
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, store model.Store, cfg TokenConfig, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, cfg: cfg, logger: logger}
}

// IssueSessionTokens mints the access and refresh token pair for a session.
func (s *TokenService) IssueSessionTokens(user model.User, session model.Session) (accessToken string, refreshToken string, err error) {
	access, err := s.manager.Issue(accessClaims(user, session.ID), s.cfg.AccessTTL)
	if err != nil {
		return "", "", fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.manager.Issue(model.TokenClaims{
		Type:      model.TokenRefresh,
		UserID:    user.ID,
		SessionID: session.ID,
	}, s.cfg.RefreshTTL)
	if err != nil {
		return "", "", fmt.Errorf("issue refresh: %w", err)
	}

	return access, refresh, nil
}

// ReissueAccessToken mints a new access token from a refresh token whose
// session is still valid.
func (s *TokenService) ReissueAccessToken(ctx context.Context, refreshToken string) (string, model.Identity, error) {
	v := s.manager.Verify(refreshToken)
	if !v.Valid {
		switch {
		case v.Expired:
			return "", model.Identity{}, apiErrors.ErrTokenExpired
		case v.SignatureInvalid:
			return "", model.Identity{}, apiErrors.ErrInvalidSignature
		}
		return "", model.Identity{}, apiErrors.ErrInvalidToken
	}
	if v.Claims.Type != model.TokenRefresh {
		return "", model.Identity{}, apiErrors.ErrInvalidToken
	}

	session, err := s.store.Sessions().GetByID(ctx, v.Claims.SessionID)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.Identity{}, apiErrors.ErrSessionInvalid
	}
	if err != nil {
		return "", model.Identity{}, fmt.Errorf("failed to get session: %w", err)
	}
	if !session.Valid {
		s.logger.Debug("Token service: refresh against invalidated session",
			"session_id", session.ID)
		return "", model.Identity{}, apiErrors.ErrSessionInvalid
	}

	user, err := s.store.Users().GetByID(ctx, session.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.Identity{}, apiErrors.ErrInvalidToken
	}
	if err != nil {
		return "", model.Identity{}, fmt.Errorf("failed to get user: %w", err)
	}

	access, err := s.manager.Issue(accessClaims(user, session.ID), s.cfg.AccessTTL)
	if err != nil {
		return "", model.Identity{}, fmt.Errorf("issue access: %w", err)
	}

	s.logger.Debug("Token service: access token reissued",
		"user_id", user.ID,
		"session_id", session.ID)

	identity := identityFromClaims(accessClaims(user, session.ID))
	identity.AccessToken = access
	return access, identity, nil
}

// Deserialize resolves the caller of a request. A valid access token is
// used as is; an expired one is replaced through the refresh token when
// one is supplied, and the new token is carried on the identity.
func (s *TokenService) Deserialize(ctx context.Context, accessToken, refreshToken string) (model.Identity, error) {
	if accessToken == "" {
		return model.Identity{}, apiErrors.ErrMissingToken
	}

	v := s.manager.Verify(accessToken)
	if v.Valid {
		if v.Claims.Type != model.TokenAccess {
			return model.Identity{}, apiErrors.ErrInvalidToken
		}
		return identityFromClaims(v.Claims), nil
	}

	if v.SignatureInvalid {
		return model.Identity{}, apiErrors.ErrInvalidSignature
	}
	if !v.Expired {
		return model.Identity{}, apiErrors.ErrInvalidToken
	}
	if refreshToken == "" {
		return model.Identity{}, apiErrors.ErrTokenExpired
	}

	_, identity, err := s.ReissueAccessToken(ctx, refreshToken)
	if err != nil {
		return model.Identity{}, err
	}
	return identity, nil
}

// GenerateRecoveryLink builds a password recovery link for user. The token
// is signed with a secret that includes the current password hash, so a
// password change invalidates every outstanding link.
func (s *TokenService) GenerateRecoveryLink(user model.User) (string, error) {
	token, err := s.manager.IssueWithSecret(model.TokenClaims{
		Type:   model.TokenRecovery,
		UserID: user.ID,
		Email:  user.Email,
	}, s.recoverySecret(user), s.cfg.RecoveryTTL)
	if err != nil {
		return "", fmt.Errorf("issue recovery: %w", err)
	}

	return fmt.Sprintf("%s/user/recovery/%s/%s", strings.TrimRight(s.cfg.PublicURL, "/"), user.ID, token), nil
}

// ValidateRecoveryToken checks token against the user's current secret.
func (s *TokenService) ValidateRecoveryToken(user model.User, token string) bool {
	v := s.manager.VerifyWithSecret(token, s.recoverySecret(user))
	return v.Valid && v.Claims.Type == model.TokenRecovery && v.Claims.UserID == user.ID
}

func (s *TokenService) recoverySecret(user model.User) string {
	return s.cfg.Secret + user.PasswordHash
}

func accessClaims(user model.User, sessionID uuid.UUID) model.TokenClaims {
	return model.TokenClaims{
		Type:      model.TokenAccess,
		UserID:    user.ID,
		SessionID: sessionID,
		Email:     user.Email,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
	}
}

func identityFromClaims(c model.TokenClaims) model.Identity {
	return model.Identity{
		UserID:    c.UserID,
		SessionID: c.SessionID,
		Email:     c.Email,
		Username:  c.Username,
		IsAdmin:   c.IsAdmin,
	}
}
