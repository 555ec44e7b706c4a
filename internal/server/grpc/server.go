// Package grpc exposes the vault services over gRPC using the generated
// passkeeper.v1 messages. Session tokens travel in the access_token
// metadata key.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/services"
	"github.com/dmitrijs2005/passkeeper/internal/strength"
	"google.golang.org/grpc"
)

// AccountService is the subset of services.AccountService used by the server.
type AccountService interface {
	Register(ctx context.Context, r services.Registration) (*models.Account, error)
	Login(ctx context.Context, email, password string) (string, error)
	VerifyMaster(ctx context.Context, accountID, masterPassword string) error
	ChangePassword(ctx context.Context, accountID, current, next string) error
	ChangeMasterPassword(ctx context.Context, accountID, current, next string) error
	RequestRecovery(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, next string) error
	Authenticate(ctx context.Context, token string) (*auth.Session, error)
	Logout(ctx context.Context, token string) error
}

type CredentialService interface {
	Create(ctx context.Context, ownerID string, in services.NewCredential) (*models.CredentialView, error)
	Update(ctx context.Context, ownerID, id string, patch models.CredentialPatch) (*models.CredentialView, error)
	Reveal(ctx context.Context, ownerID, id string) (string, error)
	Delete(ctx context.Context, ownerID, id string) error
	Get(ctx context.Context, ownerID, id string) (*models.CredentialView, error)
	List(ctx context.Context, ownerID string, filter models.CredentialFilter) ([]*models.CredentialView, error)
}

type PasswordService interface {
	Generate(opts passgen.Options) (*services.GeneratedPassword, error)
	Score(password string) strength.Result
}

type BackupService interface {
	Export(ctx context.Context, ownerID string) (*services.Backup, error)
}

// GRPCServer implements pb.VaultServer on top of the services.
type GRPCServer struct {
	pb.UnimplementedVaultServer

	address     string
	accounts    AccountService
	credentials CredentialService
	passwords   PasswordService
	backups     BackupService
	logger      logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, accounts AccountService, credentials CredentialService,
	passwords PasswordService, backups BackupService) *GRPCServer {
	return &GRPCServer{
		address:     address,
		accounts:    accounts,
		credentials: credentials,
		passwords:   passwords,
		backups:     backups,
		logger:      l.With("module", "grpc_server"),
	}
}

// NewServer builds a grpc.Server with the logging and session
// interceptors, and registers s on it.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	}, opts...)

	srv := grpc.NewServer(opts...)
	pb.RegisterVaultServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
