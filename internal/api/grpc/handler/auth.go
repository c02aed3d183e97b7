package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/garden-server/internal/api/grpc/proto"
	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/model"
	"github.com/dtroode/garden-server/internal/service"
)

// AuthService defines registration, login and credential operations.
type AuthService interface {
	SignUp(ctx context.Context, in service.SignUpInput) (model.User, error)
	CheckAvailability(ctx context.Context, email, username string) (service.Availability, error)
	Login(ctx context.Context, in service.LoginInput) (service.LoginResult, error)
	Logout(ctx context.Context, identity model.Identity) error
	ChangePassword(ctx context.Context, userID uuid.UUID, in service.ChangePasswordInput) error
	RecoverPassword(ctx context.Context, email string) (string, error)
	ValidateRecovery(ctx context.Context, userID uuid.UUID, token string) error
	ResetPassword(ctx context.Context, userID uuid.UUID, token string, in service.ResetPasswordInput) error
	SetupTwoFactor(ctx context.Context, userID uuid.UUID) (service.TwoFactorSetup, error)
	VerifyTwoFactor(ctx context.Context, userID uuid.UUID, code string) error
}

// TokenService defines access token reissue.
type TokenService interface {
	ReissueAccessToken(ctx context.Context, refreshToken string) (string, model.Identity, error)
}

// SessionService lists the sessions of a user.
type SessionService interface {
	ListSessions(ctx context.Context, userID uuid.UUID) ([]model.Session, error)
}

var _ proto.AuthServer = (*Auth)(nil)

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	proto.UnimplementedAuthServer

	authService    AuthService
	tokenService   TokenService
	sessionService SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	authService AuthService,
	tokenService TokenService,
	sessionService SessionService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService:    authService,
		tokenService:   tokenService,
		sessionService: sessionService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// SignUp registers a new account.
func (h *Auth) SignUp(ctx context.Context, req *proto.SignUpRequest) (*proto.UserResponse, error) {
	h.logger.Debug("Auth handler: processing sign up request",
		"username", req.Username)

	user, err := h.authService.SignUp(ctx, service.SignUpInput{
		Name:            req.Name,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.logger.Debug("Auth handler: sign up failed",
			"username", req.Username,
			"error", err.Error())
		return nil, handleError(ctx, err)
	}

	return &proto.UserResponse{User: toProtoUser(user, true)}, nil
}

func (h *Auth) CheckAvailability(ctx context.Context, req *proto.CheckAvailabilityRequest) (*proto.CheckAvailabilityResponse, error) {
	out, err := h.authService.CheckAvailability(ctx, req.Email, req.Username)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.CheckAvailabilityResponse{
		EmailAvailable:    out.EmailAvailable,
		UsernameAvailable: out.UsernameAvailable,
	}, nil
}

// Login verifies credentials and returns the session tokens.
func (h *Auth) Login(ctx context.Context, req *proto.LoginRequest) (*proto.LoginResponse, error) {
	var userAgent string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get("user-agent"); len(values) > 0 {
			userAgent = values[0]
		}
	}

	result, err := h.authService.Login(ctx, service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: userAgent,
	})
	if err != nil {
		return nil, handleError(ctx, err)
	}

	h.logger.Debug("Auth handler: login completed",
		"user_id", result.User.ID,
		"session_id", result.Session.ID)

	return &proto.LoginResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		SessionId:    result.Session.ID.String(),
		User:         toProtoUser(result.User, true),
	}, nil
}

// RefreshToken exchanges a refresh token for a new access token.
func (h *Auth) RefreshToken(ctx context.Context, req *proto.RefreshTokenRequest) (*proto.RefreshTokenResponse, error) {
	if req.RefreshToken == "" {
		return nil, handleError(ctx, apiErrors.ErrValidation.WithMessage("refresh token is required"))
	}

	access, _, err := h.tokenService.ReissueAccessToken(ctx, req.RefreshToken)
	if err != nil {
		h.logger.Debug("Auth handler: token refresh failed",
			"error", err.Error())
		return nil, handleError(ctx, err)
	}

	return &proto.RefreshTokenResponse{AccessToken: access}, nil
}

// Logout invalidates the caller's session.
func (h *Auth) Logout(ctx context.Context, _ *proto.Empty) (*proto.Empty, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	if err := h.authService.Logout(ctx, caller); err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.Empty{}, nil
}

func (h *Auth) ChangePassword(ctx context.Context, req *proto.ChangePasswordRequest) (*proto.Empty, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	err = h.authService.ChangePassword(ctx, caller.UserID, service.ChangePasswordInput{
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.Empty{}, nil
}

// RecoverPassword always answers with the same message, whether or not the
// email belongs to an account.
func (h *Auth) RecoverPassword(ctx context.Context, req *proto.RecoverPasswordRequest) (*proto.MessageResponse, error) {
	msg, err := h.authService.RecoverPassword(ctx, req.Email)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.MessageResponse{Message: msg}, nil
}

func (h *Auth) ValidateRecovery(ctx context.Context, req *proto.RecoveryTokenRequest) (*proto.Empty, error) {
	userID, err := parseID(req.UserId, "user_id")
	if err != nil {
		return nil, handleError(ctx, err)
	}
	if err := h.authService.ValidateRecovery(ctx, userID, req.Token); err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.Empty{}, nil
}

func (h *Auth) ResetPassword(ctx context.Context, req *proto.ResetPasswordRequest) (*proto.Empty, error) {
	userID, err := parseID(req.UserId, "user_id")
	if err != nil {
		return nil, handleError(ctx, err)
	}

	err = h.authService.ResetPassword(ctx, userID, req.Token, service.ResetPasswordInput{
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.Empty{}, nil
}

func (h *Auth) SetupTwoFactor(ctx context.Context, _ *proto.Empty) (*proto.SetupTwoFactorResponse, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	setup, err := h.authService.SetupTwoFactor(ctx, caller.UserID)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.SetupTwoFactorResponse{
		AlreadyEnabled: setup.AlreadyEnabled,
		Secret:         setup.Secret,
		OtpauthUrl:     setup.OTPAuthURL,
		QrCode:         setup.QRCode,
	}, nil
}

func (h *Auth) VerifyTwoFactor(ctx context.Context, req *proto.VerifyTwoFactorRequest) (*proto.Empty, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	if err := h.authService.VerifyTwoFactor(ctx, caller.UserID, req.Code); err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.Empty{}, nil
}

func (h *Auth) ListSessions(ctx context.Context, _ *proto.Empty) (*proto.ListSessionsResponse, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	sessions, err := h.sessionService.ListSessions(ctx, caller.UserID)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	out := make([]*proto.Session, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toProtoSession(s))
	}
	return &proto.ListSessionsResponse{Sessions: out}, nil
}
