package server

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/model"
)

var _ model.Server = (*GRPCServer)(nil)

// GRPCServer wraps a gRPC server with address and lifecycle methods.
type GRPCServer struct {
	server *grpc.Server
	addr   string
	logger *logger.Logger
}

// NewGRPCServer creates a GRPCServer with given server and address.
func NewGRPCServer(
	server *grpc.Server,
	addr string,
	logger *logger.Logger,
) *GRPCServer {
	return &GRPCServer{server: server, addr: addr, logger: logger}
}

// Start starts serving on the configured address using the provided security layer.
func (s *GRPCServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.logger.Info("gRPC server listening",
		"address", listener.Addr().String())
	return s.server.Serve(listener)
}

// Stop waits for in-flight calls to finish. When ctx expires first the
// remaining connections are closed.
func (s *GRPCServer) Stop(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		s.logger.Warn("gRPC graceful stop timed out, closing connections",
			"address", s.addr)
		s.server.Stop()
		<-stopped
		return ctx.Err()
	}
}

// Address returns the configured listen address.
func (s *GRPCServer) Address() string {
	return s.addr
}
