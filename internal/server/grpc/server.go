// Package grpc exposes the credential service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/credvault/internal/logging"
	pb "github.com/dmitrijs2005/credvault/internal/proto"
	"github.com/dmitrijs2005/credvault/internal/server/models"
	"google.golang.org/grpc"
)

// CredentialService is the business logic behind the gRPC handlers.
type CredentialService interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Login(ctx context.Context, username, password string) (string, error)
	ListAccounts(ctx context.Context, token string) ([]models.Account, error)
	AddAccount(ctx context.Context, token, name, password string) (int64, error)
	DeleteAccount(ctx context.Context, token string, accountID int64) error
	Logout(ctx context.Context, token string)
}

type GRPCServer struct {
	pb.UnimplementedCredVaultServer
	address     string
	credentials CredentialService
	logger      logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, cs CredentialService) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		credentials: cs,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.sessionTokenInterceptor))

	pb.RegisterCredVaultServer(srv, s)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	<-stopped
	return nil
}
