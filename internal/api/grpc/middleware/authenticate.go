package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/model"
)

// Metadata keys read and written by the authentication interceptor.
const (
	AuthorizationKey = "authorization"
	RefreshTokenKey  = "x-refresh-token"
	AccessTokenKey   = "x-access-token"
)

// TokenService resolves the caller from the request tokens.
type TokenService interface {
	Deserialize(ctx context.Context, accessToken, refreshToken string) (model.Identity, error)
}

// Authenticate validates bearer tokens and injects the caller identity into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// AuthFunc requires a caller. An expired access token is replaced through
// the refresh token and the new one is returned in the x-access-token header.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	accessToken, refreshToken := tokensFromMetadata(ctx)
	return m.authenticate(ctx, accessToken, refreshToken)
}

// OptionalAuthFunc lets anonymous calls through. Supplied tokens are still
// validated.
func (m *Authenticate) OptionalAuthFunc(ctx context.Context) (context.Context, error) {
	accessToken, refreshToken := tokensFromMetadata(ctx)
	if accessToken == "" {
		return ctx, nil
	}
	return m.authenticate(ctx, accessToken, refreshToken)
}

func (m *Authenticate) authenticate(ctx context.Context, accessToken, refreshToken string) (context.Context, error) {
	identity, err := m.tokenService.Deserialize(ctx, accessToken, refreshToken)
	if err != nil {
		apiErr := apiErrors.From(err)
		if apiErr.Kind == apiErrors.KindInternal {
			m.logger.Error("Authenticate middleware: token deserialization failed",
				"error", err.Error())
		}
		return nil, status.Error(apiErr.GRPCCode, apiErr.Message)
	}

	if identity.AccessToken != "" {
		if err := grpc.SetHeader(ctx, metadata.Pairs(AccessTokenKey, identity.AccessToken)); err != nil {
			m.logger.Debug("Authenticate middleware: failed to set access token header",
				"error", err.Error())
		}
	}

	return m.contextManager.SetIdentityToContext(ctx, identity), nil
}

func tokensFromMetadata(ctx context.Context) (accessToken, refreshToken string) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ""
	}
	if values := md.Get(AuthorizationKey); len(values) > 0 {
		accessToken = strings.TrimSpace(strings.TrimPrefix(values[0], "Bearer "))
	}
	if values := md.Get(RefreshTokenKey); len(values) > 0 {
		refreshToken = values[0]
	}
	return accessToken, refreshToken
}
