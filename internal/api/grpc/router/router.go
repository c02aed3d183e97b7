package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/garden-server/internal/api/grpc/handler"
	"github.com/dtroode/garden-server/internal/api/grpc/middleware"
	"github.com/dtroode/garden-server/internal/api/grpc/proto"
	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/model"
	"github.com/dtroode/garden-server/internal/service"
)

// publicMethods are served without a caller.
var publicMethods = map[string]bool{
	proto.Auth_SignUp_FullMethodName:            true,
	proto.Auth_CheckAvailability_FullMethodName: true,
	proto.Auth_Login_FullMethodName:             true,
	proto.Auth_RefreshToken_FullMethodName:      true,
	proto.Auth_RecoverPassword_FullMethodName:   true,
	proto.Auth_ValidateRecovery_FullMethodName:  true,
	proto.Auth_ResetPassword_FullMethodName:     true,
}

// optionalAuthMethods accept anonymous callers but resolve supplied tokens.
var optionalAuthMethods = map[string]bool{
	proto.Users_GetUserDetails_FullMethodName: true,
}

// Router represents a gRPC router for the garden services.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	authService    *service.Auth
	accountService *service.Account
	graphService   *service.Graph
	tokenService   *service.TokenService
	sessionService *service.SessionManager
	contextManager model.ContextManager
	registerer     prometheus.Registerer
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	authService *service.Auth,
	accountService *service.Account,
	graphService *service.Graph,
	tokenService *service.TokenService,
	sessionService *service.SessionManager,
	contextManager model.ContextManager,
	registerer prometheus.Registerer,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		accountService: accountService,
		graphService:   graphService,
		tokenService:   tokenService,
		sessionService: sessionService,
		contextManager: contextManager,
		registerer:     registerer,
		logger:         logger,
	}
}

func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return !publicMethods[c.FullMethod()] && !optionalAuthMethods[c.FullMethod()]
}

func allowsAnonymous(_ context.Context, c interceptors.CallMeta) bool {
	return optionalAuthMethods[c.FullMethod()]
}

// Register builds the gRPC server with logging, metrics, panic recovery and
// authentication interceptors and registers all services on it.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	metrics := middleware.NewMetrics(r.registerer)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	panicHandler := recovery.WithRecoveryHandler(func(p any) error {
		r.logger.Error("gRPC handler panicked",
			"panic", p)
		return status.Error(codes.Internal, "internal server error")
	})

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			metrics.HandleGRPC,
			recovery.UnaryServerInterceptor(panicHandler),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.OptionalAuthFunc),
				selector.MatchFunc(allowsAnonymous),
			),
		),
	)
	r.registerAuthRoutes(s)
	r.registerUsersRoutes(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.tokenService, r.sessionService, r.contextManager, r.logger)
	proto.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerUsersRoutes(server *grpc.Server) {
	usersHandler := handler.NewUsers(r.accountService, r.graphService, r.contextManager, r.logger)
	proto.RegisterUsersServer(server, usersHandler)
}
