package handler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	grpcContext "github.com/dtroode/garden-server/internal/api/grpc/context"
	"github.com/dtroode/garden-server/internal/api/grpc/proto"
	"github.com/dtroode/garden-server/internal/hasher"
	"github.com/dtroode/garden-server/internal/mocks"
	"github.com/dtroode/garden-server/internal/model"
	"github.com/dtroode/garden-server/internal/privacy"
	"github.com/dtroode/garden-server/internal/ratelimit"
	"github.com/dtroode/garden-server/internal/repository/memory"
	"github.com/dtroode/garden-server/internal/service"
	"github.com/dtroode/garden-server/internal/testutil"
	"github.com/dtroode/garden-server/internal/token"
	"github.com/dtroode/garden-server/internal/twofactor"
)

type handlerEnv struct {
	store   *memory.Store
	mailer  *mocks.Mailer
	storage *mocks.Storage
	cm      *grpcContext.Manager
	tokens  *service.TokenService
	auth    *Auth
	users   *Users
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	log := testutil.MakeNoopLogger()
	store := memory.New()
	env := &handlerEnv{
		store:   store,
		mailer:  mocks.NewMailer(t),
		storage: mocks.NewStorage(t),
		cm:      grpcContext.NewManager(),
	}

	env.tokens = service.NewTokenService(token.NewJWT("handler-secret"), store, service.TokenConfig{
		Secret:      "handler-secret",
		AccessTTL:   time.Minute,
		RefreshTTL:  time.Hour,
		RecoveryTTL: time.Minute,
		PublicURL:   "https://garden.test",
	}, log)
	sessions := service.NewSessionManager(store, log)
	passwords := hasher.NewBcrypt(bcrypt.MinCost)
	auth := service.NewAuth(store, passwords, env.tokens, sessions,
		twofactor.NewTOTP("Garden Test"), env.mailer, ratelimit.Noop{}, log)
	account := service.NewAccount(store, passwords, env.storage, privacy.NewResolver(nil), log)
	graph := service.NewGraph(store, log)

	env.auth = NewAuth(auth, env.tokens, sessions, env.cm, log)
	env.users = NewUsers(account, graph, env.cm, log)
	return env
}

// register signs up and logs in username, returning a context carrying its identity.
func (e *handlerEnv) register(t *testing.T, username string) (context.Context, *proto.LoginResponse) {
	t.Helper()
	ctx := context.Background()

	_, err := e.auth.SignUp(ctx, &proto.SignUpRequest{
		Name:            username,
		Username:        username,
		Email:           username + "@example.com",
		Password:        "password-" + username,
		ConfirmPassword: "password-" + username,
	})
	require.NoError(t, err)
	return e.login(t, username)
}

// registerAdmin stores an admin account directly and logs it in.
func (e *handlerEnv) registerAdmin(t *testing.T, username string) (context.Context, *proto.LoginResponse) {
	t.Helper()
	hash, err := hasher.NewBcrypt(bcrypt.MinCost).Hash("password-" + username)
	require.NoError(t, err)
	_, err = e.store.Users().Create(context.Background(), model.User{
		ID:           uuid.New(),
		Name:         username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Privacy:      model.PrivacyPublic,
		IsAdmin:      true,
	})
	require.NoError(t, err)
	return e.login(t, username)
}

func (e *handlerEnv) login(t *testing.T, username string) (context.Context, *proto.LoginResponse) {
	t.Helper()
	ctx := context.Background()

	login, err := e.auth.Login(ctx, &proto.LoginRequest{
		Email:    username + "@example.com",
		Password: "password-" + username,
	})
	require.NoError(t, err)

	identity, err := e.tokens.Deserialize(ctx, login.AccessToken, "")
	require.NoError(t, err)
	return e.cm.SetIdentityToContext(ctx, identity), login
}

func (e *handlerEnv) setPrivacy(t *testing.T, ctx context.Context, privacy model.Privacy) {
	t.Helper()
	p := string(privacy)
	_, err := e.users.UpdateProfile(ctx, &proto.UpdateProfileRequest{Privacy: &p})
	require.NoError(t, err)
}
