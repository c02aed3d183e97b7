package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/garden-server/internal/api/grpc/context"
	"github.com/dtroode/garden-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/garden-server/internal/api/grpc/server"
	"github.com/dtroode/garden-server/internal/api/rest"
	"github.com/dtroode/garden-server/internal/config"
	"github.com/dtroode/garden-server/internal/hasher"
	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/mailer"
	"github.com/dtroode/garden-server/internal/model"
	"github.com/dtroode/garden-server/internal/privacy"
	"github.com/dtroode/garden-server/internal/ratelimit"
	"github.com/dtroode/garden-server/internal/repository/memory"
	"github.com/dtroode/garden-server/internal/repository/postgres"
	"github.com/dtroode/garden-server/internal/server"
	"github.com/dtroode/garden-server/internal/service"
	storage "github.com/dtroode/garden-server/internal/storage/minio"
	"github.com/dtroode/garden-server/internal/token"
	"github.com/dtroode/garden-server/internal/twofactor"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	var (
		store  model.Store
		pinger rest.Pinger
	)
	if cfg.Database.InMemory {
		logger.Warn("using in-memory store, data will not survive restarts")
		store = memory.New()
	} else {
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("failed to initialize storage", "error", err)
		}
		defer db.Close()
		store = postgres.NewStore(db.DB)
		pinger = db
	}

	mail := newMailer(cfg.NATS, logger)
	limiter := newLimiter(ctx, cfg.Redis, logger)

	storageClient, err := storage.New(ctx, storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	tokenService := service.NewTokenService(tokenManager, store, service.TokenConfig{
		Secret:      cfg.JWT.Secret,
		AccessTTL:   cfg.JWT.AccessTTL,
		RefreshTTL:  cfg.JWT.RefreshTTL,
		RecoveryTTL: cfg.JWT.RecoveryTTL,
		PublicURL:   cfg.HTTP.PublicURL,
	}, logger)
	sessionService := service.NewSessionManager(store, logger)
	passwordHasher := hasher.NewBcrypt(cfg.Bcrypt.Cost)
	authService := service.NewAuth(store, passwordHasher, tokenService, sessionService,
		twofactor.NewTOTP(cfg.TOTP.Issuer), mail, limiter, logger)
	accountService := service.NewAccount(store, passwordHasher, storageClient, privacy.NewResolver(nil), logger)
	graphService := service.NewGraph(store, logger)
	ctxMgr := grpcctx.NewManager()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := router.New(authService, accountService, graphService, tokenService, sessionService, ctxMgr, registry, logger)
	grpcSrv := r.Register()
	reflection.Register(grpcSrv)

	servers := []model.Server{
		grpcServer.NewGRPCServer(grpcSrv, fmt.Sprintf(":%s", cfg.GRPC.Port), logger),
		server.NewHTTPServer(rest.NewRouter(authService, accountService, registry, pinger, logger), fmt.Sprintf(":%s", cfg.HTTP.Port)),
	}

	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	if closer, ok := mail.(interface{ Close() }); ok {
		closer.Close()
	}
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// newMailer publishes through NATS when configured and logs mail otherwise.
func newMailer(cfg config.NATS, logger *logger.Logger) model.Mailer {
	if cfg.URL == "" {
		logger.Warn("NATS_URL is empty, outbound mail will only be logged")
		return mailer.NewLog(logger)
	}
	m, err := mailer.NewNATS(mailer.Config{
		URL:           cfg.URL,
		Subject:       cfg.Subject,
		MaxReconnects: cfg.MaxReconnects,
		ReconnectWait: cfg.ReconnectWait,
	}, logger)
	if err != nil {
		logger.Fatal("failed to connect mailer", "error", err)
	}
	return m
}

// newLimiter counts failed attempts in Redis when configured.
func newLimiter(ctx context.Context, cfg config.Redis, logger *logger.Logger) model.AttemptLimiter {
	if cfg.Addr == "" {
		logger.Warn("REDIS_ADDR is empty, failed attempts are not limited")
		return ratelimit.Noop{}
	}
	l, err := ratelimit.NewRedis(ctx, &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, cfg.MaxAttempts, cfg.Window)
	if err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}
	return l
}
