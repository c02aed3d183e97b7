package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/model"
	"github.com/dtroode/garden-server/internal/ratelimit"
	"github.com/dtroode/garden-server/internal/testutil"
)

func TestAuth_SignUp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user, err := env.auth.SignUp(ctx, SignUpInput{
		Name:            "Alice",
		Username:        "alice",
		Email:           "  Alice@Example.COM ",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, model.PrivacyPublic, user.Privacy)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.Zero(t, user.FollowersAmount)
}

func TestAuth_SignUp_Rejects(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signUp(t, "alice")

	valid := func() SignUpInput {
		return SignUpInput{
			Name:            "Bob",
			Username:        "bob",
			Email:           "bob@example.com",
			Password:        "password-bob",
			ConfirmPassword: "password-bob",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*SignUpInput)
		wantErr error
	}{
		{
			name:    "invalid email",
			mutate:  func(in *SignUpInput) { in.Email = "bob" },
			wantErr: apiErrors.ErrValidation,
		},
		{
			name:    "short password",
			mutate:  func(in *SignUpInput) { in.Password, in.ConfirmPassword = "short", "short" },
			wantErr: apiErrors.ErrValidation,
		},
		{
			name:    "missing username",
			mutate:  func(in *SignUpInput) { in.Username = "" },
			wantErr: apiErrors.ErrValidation,
		},
		{
			name:    "reserved username",
			mutate:  func(in *SignUpInput) { in.Username = "Private" },
			wantErr: apiErrors.ErrUsernameReserved,
		},
		{
			name:    "passwords differ",
			mutate:  func(in *SignUpInput) { in.ConfirmPassword = "password-other" },
			wantErr: apiErrors.ErrPasswordsDiffer,
		},
		{
			name:    "email taken",
			mutate:  func(in *SignUpInput) { in.Email = "ALICE@example.com" },
			wantErr: apiErrors.ErrEmailTaken,
		},
		{
			name:    "username taken",
			mutate:  func(in *SignUpInput) { in.Username = "Alice" },
			wantErr: apiErrors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			_, err := env.auth.SignUp(ctx, in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// rivalStore inserts rival right before the first user it is asked to create,
// as a concurrent sign up would after the availability check.
type rivalStore struct {
	model.Store
	rival model.User
	once  *sync.Once
}

func (s rivalStore) Users() model.UserStore {
	return rivalUsers{UserStore: s.Store.Users(), s: s}
}

type rivalUsers struct {
	model.UserStore
	s rivalStore
}

func (u rivalUsers) Create(ctx context.Context, user model.User) (model.User, error) {
	u.s.once.Do(func() {
		_, _ = u.UserStore.Create(ctx, u.s.rival)
	})
	return u.UserStore.Create(ctx, user)
}

func TestAuth_SignUp_LostRace(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// the rival takes the username only; the conflict must not be blamed on the email
	store := rivalStore{
		Store: env.store,
		rival: model.User{ID: uuid.New(), Name: "Bob", Username: "bob", Email: "rival@example.com", Privacy: model.PrivacyPublic},
		once:  &sync.Once{},
	}
	auth := NewAuth(store, env.hasher, env.tokens, env.sessions, env.totp, env.mailer, ratelimit.Noop{}, testutil.MakeNoopLogger())

	_, err := auth.SignUp(ctx, SignUpInput{
		Name:            "Bob",
		Username:        "bob",
		Email:           "bob@example.com",
		Password:        "password-bob",
		ConfirmPassword: "password-bob",
	})
	assert.ErrorIs(t, err, apiErrors.ErrIdentityTaken)
	assert.NotErrorIs(t, err, apiErrors.ErrEmailTaken)
	assert.Equal(t, apiErrors.KindConflict, apiErrors.KindOf(err))

	_, err = env.store.Users().GetByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAuth_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signUp(t, "alice")

	got, err := env.auth.CheckAvailability(ctx, "alice@example.com", "bob")
	require.NoError(t, err)
	assert.False(t, got.EmailAvailable)
	assert.True(t, got.UsernameAvailable)

	got, err = env.auth.CheckAvailability(ctx, "bob@example.com", "private")
	require.NoError(t, err)
	assert.True(t, got.EmailAvailable)
	assert.False(t, got.UsernameAvailable)
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")

	res := env.login(t, "alice")
	assert.Equal(t, alice.ID, res.User.ID)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.True(t, res.Session.Valid)
	assert.Equal(t, "test-agent", res.Session.UserAgent)
	assert.NotNil(t, res.User.Relations.Followers)

	_, err := env.auth.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, apiErrors.ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "password-alice"})
	assert.ErrorIs(t, err, apiErrors.ErrInvalidCredentials)
}

func TestAuth_Login_ConcurrentSessions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")

	first := env.login(t, "alice")
	second := env.login(t, "alice")
	assert.NotEqual(t, first.Session.ID, second.Session.ID)

	sessions, err := env.sessions.ListSessions(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

type countingLimiter struct {
	mu       sync.Mutex
	max      int
	failures map[string]int
}

func newCountingLimiter(max int) *countingLimiter {
	return &countingLimiter{max: max, failures: map[string]int{}}
}

func (l *countingLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failures[key] < l.max, nil
}

func (l *countingLimiter) Fail(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[key]++
	return nil
}

func (l *countingLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, key)
	return nil
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (bool, error) { return false, errors.New("down") }
func (brokenLimiter) Fail(context.Context, string) error          { return errors.New("down") }
func (brokenLimiter) Reset(context.Context, string) error         { return errors.New("down") }

func TestAuth_Login_AttemptLimit(t *testing.T) {
	ctx := context.Background()
	limiter := newCountingLimiter(2)
	env := newTestEnvWith(t, testTokenConfig, limiter)
	env.signUp(t, "alice")

	for range 2 {
		_, err := env.auth.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong-password"})
		assert.ErrorIs(t, err, apiErrors.ErrInvalidCredentials)
	}

	_, err := env.auth.Login(ctx, LoginInput{Email: "alice@example.com", Password: "password-alice"})
	assert.ErrorIs(t, err, apiErrors.ErrTooManyAttempts)

	require.NoError(t, limiter.Reset(ctx, "login:alice@example.com"))
	env.login(t, "alice")
}

func TestAuth_Login_LimiterUnavailable(t *testing.T) {
	env := newTestEnvWith(t, testTokenConfig, brokenLimiter{})
	env.signUp(t, "alice")

	res := env.login(t, "alice")
	assert.NotEmpty(t, res.AccessToken)
}

func TestAuth_Logout(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.signUp(t, "alice")
	res := env.login(t, "alice")

	identity, err := env.tokens.Deserialize(ctx, res.AccessToken, "")
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx, identity))

	// access tokens outlive the session until they expire
	_, err = env.tokens.Deserialize(ctx, res.AccessToken, "")
	require.NoError(t, err)

	_, _, err = env.tokens.ReissueAccessToken(ctx, res.RefreshToken)
	assert.ErrorIs(t, err, apiErrors.ErrSessionInvalid)

	assert.ErrorIs(t, env.auth.Logout(ctx, model.Identity{}), apiErrors.ErrMissingToken)
}

func TestAuth_ChangePassword(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")

	err := env.auth.ChangePassword(ctx, alice.ID, ChangePasswordInput{
		OldPassword:     "nope-nope",
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})
	assert.ErrorIs(t, err, apiErrors.ErrWrongPassword)

	err = env.auth.ChangePassword(ctx, alice.ID, ChangePasswordInput{
		OldPassword:     "password-alice",
		NewPassword:     "new-password",
		ConfirmPassword: "other-password",
	})
	assert.ErrorIs(t, err, apiErrors.ErrPasswordsDiffer)

	err = env.auth.ChangePassword(ctx, alice.ID, ChangePasswordInput{
		OldPassword:     "password-alice",
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})
	require.NoError(t, err)

	_, err = env.auth.Login(ctx, LoginInput{Email: "alice@example.com", Password: "new-password"})
	require.NoError(t, err)
}

// recoveryToken extracts the token from the link in a recovery mail.
func recoveryToken(t *testing.T, mail model.Mail) string {
	t.Helper()
	for _, field := range strings.Fields(mail.Body) {
		if strings.HasPrefix(field, testPublicURL+"/user/recovery/") {
			return field[strings.LastIndex(field, "/")+1:]
		}
	}
	t.Fatalf("no recovery link in %q", mail.Body)
	return ""
}

func TestAuth_RecoverPassword_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	msg, err := env.auth.RecoverPassword(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, apiErrors.RecoveryRequested, msg)
	env.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestAuth_RecoverPassword_MailFailureIsHidden(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(t, "alice")
	env.mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	msg, err := env.auth.RecoverPassword(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, apiErrors.RecoveryRequested, msg)
}

func TestAuth_ResetPassword_Validation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")

	err := env.auth.ValidateRecovery(ctx, alice.ID, "garbage")
	assert.ErrorIs(t, err, apiErrors.ErrRecoveryExpired)

	err = env.auth.ResetPassword(ctx, alice.ID, "garbage", ResetPasswordInput{Password: "new-password", ConfirmPassword: "other-password"})
	assert.ErrorIs(t, err, apiErrors.ErrPasswordsDiffer)

	err = env.auth.ResetPassword(ctx, alice.ID, "garbage", ResetPasswordInput{Password: "new-password", ConfirmPassword: "new-password"})
	assert.ErrorIs(t, err, apiErrors.ErrRecoveryExpired)
}

func TestAuth_TwoFactor(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.signUp(t, "alice")

	err := env.auth.VerifyTwoFactor(ctx, alice.ID, "123456")
	assert.ErrorIs(t, err, apiErrors.ErrTwoFactorNotSetup)

	setup, err := env.auth.SetupTwoFactor(ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, setup.AlreadyEnabled)
	assert.NotEmpty(t, setup.Secret)
	assert.True(t, strings.HasPrefix(setup.OTPAuthURL, "otpauth://totp/"))
	assert.True(t, strings.HasPrefix(setup.QRCode, "data:image/png;base64,"))

	stored := env.reload(t, alice)
	assert.True(t, stored.TwoFactor.Enabled)
	assert.Equal(t, setup.Secret, stored.TwoFactor.Secret)

	again, err := env.auth.SetupTwoFactor(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, again.AlreadyEnabled)
	assert.Empty(t, again.Secret)
	assert.Equal(t, setup.Secret, env.reload(t, alice).TwoFactor.Secret)

	code, err := env.totp.Code(setup.Secret)
	require.NoError(t, err)
	require.NoError(t, env.auth.VerifyTwoFactor(ctx, alice.ID, code))

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	err = env.auth.VerifyTwoFactor(ctx, alice.ID, wrong)
	assert.ErrorIs(t, err, apiErrors.ErrInvalidCode)
}

func TestAuth_TwoFactor_AttemptLimit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnvWith(t, testTokenConfig, newCountingLimiter(1))
	alice := env.signUp(t, "alice")

	setup, err := env.auth.SetupTwoFactor(ctx, alice.ID)
	require.NoError(t, err)
	code, err := env.totp.Code(setup.Secret)
	require.NoError(t, err)

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	assert.ErrorIs(t, env.auth.VerifyTwoFactor(ctx, alice.ID, wrong), apiErrors.ErrInvalidCode)
	assert.ErrorIs(t, env.auth.VerifyTwoFactor(ctx, alice.ID, code), apiErrors.ErrTooManyAttempts)
}

var _ model.AttemptLimiter = ratelimit.Noop{}
