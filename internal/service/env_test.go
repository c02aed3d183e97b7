package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/garden-server/internal/hasher"
	"github.com/dtroode/garden-server/internal/mocks"
	"github.com/dtroode/garden-server/internal/model"
	"github.com/dtroode/garden-server/internal/privacy"
	"github.com/dtroode/garden-server/internal/ratelimit"
	"github.com/dtroode/garden-server/internal/repository/memory"
	"github.com/dtroode/garden-server/internal/testutil"
	"github.com/dtroode/garden-server/internal/token"
	"github.com/dtroode/garden-server/internal/twofactor"
)

const testPublicURL = "https://garden.test"

var testTokenConfig = TokenConfig{
	Secret:      "test-secret",
	AccessTTL:   15 * time.Minute,
	RefreshTTL:  time.Hour,
	RecoveryTTL: 15 * time.Minute,
	PublicURL:   testPublicURL,
}

type testEnv struct {
	store    *memory.Store
	mailer   *mocks.Mailer
	storage  *mocks.Storage
	totp     *twofactor.TOTP
	hasher   model.PasswordHasher
	tokens   *TokenService
	sessions *SessionManager
	auth     *Auth
	account  *Account
	graph    *Graph
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, testTokenConfig, ratelimit.Noop{})
}

func newTestEnvWith(t *testing.T, cfg TokenConfig, limiter model.AttemptLimiter) *testEnv {
	t.Helper()

	log := testutil.MakeNoopLogger()
	store := memory.New()
	env := &testEnv{
		store:   store,
		mailer:  mocks.NewMailer(t),
		storage: mocks.NewStorage(t),
		totp:    twofactor.NewTOTP("Garden Test"),
	}
	env.tokens = NewTokenService(token.NewJWT(cfg.Secret), store, cfg, log)
	env.sessions = NewSessionManager(store, log)
	env.hasher = hasher.NewBcrypt(bcrypt.MinCost)
	env.auth = NewAuth(store, env.hasher, env.tokens, env.sessions, env.totp, env.mailer, limiter, log)
	env.account = NewAccount(store, env.hasher, env.storage, privacy.NewResolver(nil), log)
	env.graph = NewGraph(store, log)
	return env
}

func (e *testEnv) signUp(t *testing.T, username string) model.User {
	t.Helper()
	user, err := e.auth.SignUp(context.Background(), SignUpInput{
		Name:            strings.ToUpper(username[:1]) + username[1:],
		Username:        username,
		Email:           username + "@example.com",
		Password:        "password-" + username,
		ConfirmPassword: "password-" + username,
	})
	require.NoError(t, err)
	return user
}

// createAdmin stores an admin account directly; sign up never grants the flag.
func (e *testEnv) createAdmin(t *testing.T, username string) model.User {
	t.Helper()
	hash, err := e.hasher.Hash("password-" + username)
	require.NoError(t, err)
	admin, err := e.store.Users().Create(context.Background(), model.User{
		ID:           uuid.New(),
		Name:         username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Privacy:      model.PrivacyPublic,
		IsAdmin:      true,
	})
	require.NoError(t, err)
	return admin
}

func (e *testEnv) login(t *testing.T, username string) LoginResult {
	t.Helper()
	res, err := e.auth.Login(context.Background(), LoginInput{
		Email:     username + "@example.com",
		Password:  "password-" + username,
		UserAgent: "test-agent",
	})
	require.NoError(t, err)
	return res
}

func (e *testEnv) reload(t *testing.T, user model.User) model.User {
	t.Helper()
	got, err := e.store.Users().GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	return got
}
