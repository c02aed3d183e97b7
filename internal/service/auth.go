package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/model"
	"github.com/dtroode/garden-server/internal/twofactor"
)

// OTP generates and validates one-time password secrets.
type OTP interface {
	Generate(account string) (twofactor.Setup, error)
	Validate(secret, code string) bool
}

// SignUpInput is the registration form.
type SignUpInput struct {
	Name            string `validate:"required,max=100"`
	Username        string `validate:"required,min=2,max=50,alphanum"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8,max=72"`
	ConfirmPassword string `validate:"required"`
}

// LoginInput carries credentials and the client description stored on the session.
type LoginInput struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
	UserAgent string
}

// LoginResult is returned on successful login.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Session      model.Session
	User         model.User
}

// Availability reports whether an email and username can be registered.
type Availability struct {
	EmailAvailable    bool
	UsernameAvailable bool
}

// ChangePasswordInput is the password change form.
type ChangePasswordInput struct {
	OldPassword     string `validate:"required"`
	NewPassword     string `validate:"required,min=8,max=72"`
	ConfirmPassword string `validate:"required"`
}

// ResetPasswordInput is the form submitted from a recovery link.
type ResetPasswordInput struct {
	Password        string `validate:"required,min=8,max=72"`
	ConfirmPassword string `validate:"required"`
}

// TwoFactorSetup is the enrolment material. AlreadyEnabled is set, and the
// other fields are empty, when the user had already enrolled.
type TwoFactorSetup struct {
	AlreadyEnabled bool
	Secret         string
	OTPAuthURL     string
	QRCode         string
}

// Auth implements account registration, login and credential recovery.
type Auth struct {
	store    model.Store
	hasher   model.PasswordHasher
	tokens   *TokenService
	sessions *SessionManager
	otp      OTP
	mailer   model.Mailer
	limiter  model.AttemptLimiter
	validate *validator.Validate
	logger   *logger.Logger
}

func NewAuth(
	store model.Store,
	hasher model.PasswordHasher,
	tokens *TokenService,
	sessions *SessionManager,
	otp OTP,
	mailer model.Mailer,
	limiter model.AttemptLimiter,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		store:    store,
		hasher:   hasher,
		tokens:   tokens,
		sessions: sessions,
		otp:      otp,
		mailer:   mailer,
		limiter:  limiter,
		validate: newValidator(),
		logger:   logger,
	}
}

// SignUp registers a new user.
func (a *Auth) SignUp(ctx context.Context, in SignUpInput) (model.User, error) {
	in.Email = model.NormalizeEmail(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	a.logger.Debug("Auth service: starting user registration",
		"email", in.Email,
		"username", in.Username)

	if err := a.validate.Struct(in); err != nil {
		return model.User{}, validationError(err)
	}
	if model.IsReservedUsername(in.Username) {
		return model.User{}, apiErrors.ErrUsernameReserved
	}
	if in.Password != in.ConfirmPassword {
		return model.User{}, apiErrors.ErrPasswordsDiffer
	}

	if err := a.ensureAvailable(ctx, in.Email, in.Username); err != nil {
		return model.User{}, err
	}

	hash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.store.Users().Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(in.Name),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Privacy:      model.PrivacyPublic,
	})
	if errors.Is(err, model.ErrDuplicate) {
		// lost a race with a concurrent registration after the pre-check
		return model.User{}, apiErrors.ErrIdentityTaken
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", in.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// CheckAvailability reports whether email and username are free. Empty
// arguments are reported as unavailable.
func (a *Auth) CheckAvailability(ctx context.Context, email, username string) (Availability, error) {
	var out Availability

	if email = model.NormalizeEmail(email); email != "" {
		_, err := a.store.Users().GetByEmail(ctx, email)
		switch {
		case errors.Is(err, model.ErrNotFound):
			out.EmailAvailable = true
		case err != nil:
			return Availability{}, fmt.Errorf("failed to get user by email: %w", err)
		}
	}

	if username = strings.TrimSpace(username); username != "" && !model.IsReservedUsername(username) {
		_, err := a.store.Users().GetByUsername(ctx, username)
		switch {
		case errors.Is(err, model.ErrNotFound):
			out.UsernameAvailable = true
		case err != nil:
			return Availability{}, fmt.Errorf("failed to get user by username: %w", err)
		}
	}

	return out, nil
}

// Login verifies credentials and opens a session. Unknown emails and wrong
// passwords fail identically.
func (a *Auth) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	in.Email = model.NormalizeEmail(in.Email)

	a.logger.Debug("Auth service: starting user login",
		"email", in.Email)

	if err := a.validate.Struct(in); err != nil {
		return LoginResult{}, validationError(err)
	}

	attemptKey := "login:" + in.Email
	if err := a.checkAttempts(ctx, attemptKey); err != nil {
		return LoginResult{}, err
	}

	user, err := a.store.Users().GetByEmail(ctx, in.Email)
	if errors.Is(err, model.ErrNotFound) {
		a.recordFailure(ctx, attemptKey)
		return LoginResult{}, apiErrors.ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(user.PasswordHash, in.Password) {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		a.recordFailure(ctx, attemptKey)
		return LoginResult{}, apiErrors.ErrInvalidCredentials
	}
	a.resetAttempts(ctx, attemptKey)

	session, err := a.sessions.CreateSession(ctx, user.ID, in.UserAgent)
	if err != nil {
		return LoginResult{}, err
	}

	access, refresh, err := a.tokens.IssueSessionTokens(user, session)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	if user, err = withRelations(ctx, a.store, user); err != nil {
		return LoginResult{}, err
	}

	a.logger.Info("Auth service: login completed successfully",
		"user_id", user.ID,
		"session_id", session.ID)

	return LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		Session:      session,
		User:         user,
	}, nil
}

// Logout invalidates the caller's session. Access tokens already issued
// for it stay usable until they expire.
func (a *Auth) Logout(ctx context.Context, identity model.Identity) error {
	if identity.Anonymous() {
		return apiErrors.ErrMissingToken
	}
	return a.sessions.Invalidate(ctx, identity.SessionID)
}

// ChangePassword replaces the password after checking the current one.
func (a *Auth) ChangePassword(ctx context.Context, userID uuid.UUID, in ChangePasswordInput) error {
	if err := a.validate.Struct(in); err != nil {
		return validationError(err)
	}
	if in.NewPassword != in.ConfirmPassword {
		return apiErrors.ErrPasswordsDiffer
	}

	user, err := getUser(ctx, a.store, userID)
	if err != nil {
		return err
	}
	if !a.hasher.Verify(user.PasswordHash, in.OldPassword) {
		return apiErrors.ErrWrongPassword
	}

	err = a.setPassword(ctx, userID, in.NewPassword, func(locked model.User) error {
		if locked.PasswordHash != user.PasswordHash {
			return apiErrors.ErrWrongPassword
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info("Auth service: password changed",
		"user_id", userID)

	return nil
}

// RecoverPassword mails a recovery link when an account with email exists.
// The caller gets the same message either way.
func (a *Auth) RecoverPassword(ctx context.Context, email string) (string, error) {
	email = model.NormalizeEmail(email)
	if err := a.validate.Var(email, "required,email"); err != nil {
		return "", apiErrors.ErrValidation.WithMessage("email must be a valid email")
	}

	user, err := a.store.Users().GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Debug("Auth service: recovery requested for unknown email")
		return apiErrors.RecoveryRequested, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	link, err := a.tokens.GenerateRecoveryLink(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate recovery link: %w", err)
	}

	err = a.mailer.Send(ctx, model.Mail{
		To:      user.Email,
		Subject: "Reset your Garden password",
		Body:    fmt.Sprintf("Hi %s,\n\nUse the link below to choose a new password. It expires shortly.\n\n%s\n", user.Name, link),
	})
	if err != nil {
		a.logger.Error("Auth service: failed to send recovery mail",
			"user_id", user.ID,
			"error", err.Error())
	}

	return apiErrors.RecoveryRequested, nil
}

// ValidateRecovery checks a recovery link without consuming it.
func (a *Auth) ValidateRecovery(ctx context.Context, userID uuid.UUID, token string) error {
	_, err := a.recoveryUser(ctx, userID, token)
	return err
}

// ResetPassword sets a new password through a recovery link. The new hash
// invalidates the link.
func (a *Auth) ResetPassword(ctx context.Context, userID uuid.UUID, token string, in ResetPasswordInput) error {
	if err := a.validate.Struct(in); err != nil {
		return validationError(err)
	}
	if in.Password != in.ConfirmPassword {
		return apiErrors.ErrPasswordsDiffer
	}

	if _, err := a.recoveryUser(ctx, userID, token); err != nil {
		return err
	}

	// the link is checked again under the row lock so it is used at most once
	err := a.setPassword(ctx, userID, in.Password, func(locked model.User) error {
		if !a.tokens.ValidateRecoveryToken(locked, token) {
			return apiErrors.ErrRecoveryExpired
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info("Auth service: password reset through recovery link",
		"user_id", userID)

	return nil
}

// SetupTwoFactor enrols the user in TOTP. Enrolling twice is a no-op that
// reports AlreadyEnabled.
func (a *Auth) SetupTwoFactor(ctx context.Context, userID uuid.UUID) (TwoFactorSetup, error) {
	var out TwoFactorSetup
	err := a.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		user, err := lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		if user.TwoFactor.Enabled {
			out = TwoFactorSetup{AlreadyEnabled: true}
			return nil
		}

		setup, err := a.otp.Generate(user.Email)
		if err != nil {
			return fmt.Errorf("failed to generate two-factor secret: %w", err)
		}
		if err := tx.Users().SetTwoFactor(ctx, userID, model.TwoFactor{Enabled: true, Secret: setup.Secret}); err != nil {
			return fmt.Errorf("failed to save two-factor secret: %w", err)
		}

		out = TwoFactorSetup{
			Secret:     setup.Secret,
			OTPAuthURL: setup.OTPAuthURL,
			QRCode:     setup.QRCode,
		}
		return nil
	})
	if err != nil {
		return TwoFactorSetup{}, err
	}

	if !out.AlreadyEnabled {
		a.logger.Info("Auth service: two-factor enabled",
			"user_id", userID)
	}

	return out, nil
}

// VerifyTwoFactor checks a TOTP code against the stored secret.
func (a *Auth) VerifyTwoFactor(ctx context.Context, userID uuid.UUID, code string) error {
	attemptKey := "2fa:" + userID.String()
	if err := a.checkAttempts(ctx, attemptKey); err != nil {
		return err
	}

	user, err := getUser(ctx, a.store, userID)
	if err != nil {
		return err
	}
	if user.TwoFactor.Secret == "" {
		return apiErrors.ErrTwoFactorNotSetup
	}

	if !a.otp.Validate(user.TwoFactor.Secret, strings.TrimSpace(code)) {
		a.recordFailure(ctx, attemptKey)
		return apiErrors.ErrInvalidCode
	}
	a.resetAttempts(ctx, attemptKey)

	return nil
}

func (a *Auth) ensureAvailable(ctx context.Context, email, username string) error {
	_, err := a.store.Users().GetByEmail(ctx, email)
	if err == nil {
		return apiErrors.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	_, err = a.store.Users().GetByUsername(ctx, username)
	if err == nil {
		return apiErrors.ErrUsernameTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by username: %w", err)
	}

	return nil
}

func (a *Auth) recoveryUser(ctx context.Context, userID uuid.UUID, token string) (model.User, error) {
	user, err := a.store.Users().GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apiErrors.ErrRecoveryExpired
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !a.tokens.ValidateRecoveryToken(user, token) {
		return model.User{}, apiErrors.ErrRecoveryExpired
	}
	return user, nil
}

// setPassword stores a new hash once check accepts the locked row.
func (a *Auth) setPassword(ctx context.Context, userID uuid.UUID, password string, check func(model.User) error) error {
	hash, err := a.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.store.WithinTx(ctx, func(ctx context.Context, tx model.Store) error {
		user, err := lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := check(user); err != nil {
			return err
		}
		if err := tx.Users().SetPasswordHash(ctx, userID, hash); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		return nil
	})
}

// checkAttempts fails open when the limiter is unreachable.
func (a *Auth) checkAttempts(ctx context.Context, key string) error {
	ok, err := a.limiter.Allow(ctx, key)
	if err != nil {
		a.logger.Warn("Auth service: attempt limiter unavailable",
			"error", err.Error())
		return nil
	}
	if !ok {
		return apiErrors.ErrTooManyAttempts
	}
	return nil
}

func (a *Auth) recordFailure(ctx context.Context, key string) {
	if err := a.limiter.Fail(ctx, key); err != nil {
		a.logger.Warn("Auth service: failed to record attempt",
			"error", err.Error())
	}
}

func (a *Auth) resetAttempts(ctx context.Context, key string) {
	if err := a.limiter.Reset(ctx, key); err != nil {
		a.logger.Warn("Auth service: failed to reset attempts",
			"error", err.Error())
	}
}
