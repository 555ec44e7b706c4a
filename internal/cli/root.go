// Package cli implements the passkeeper command-line client. Password
// generation and scoring run locally; account and credential commands call
// a running vault server over gRPC.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	vault "github.com/dmitrijs2005/passkeeper/internal/server/grpc"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Environment variables read for persistent flag defaults.
const (
	EnvServer = "PASSKEEPER_SERVER"
	EnvToken  = "PASSKEEPER_TOKEN"

	defaultServerAddr = "127.0.0.1:50051"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotLoggedIn  = errors.New("not logged in: run `passkeeper login` and export " + EnvToken)
)

// vaultAPI is the subset of pb.VaultClient used by the account and
// credential commands.
type vaultAPI interface {
	Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error)
	Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error)
	Logout(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	RequestRecovery(ctx context.Context, in *pb.RequestRecoveryRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ResetPassword(ctx context.Context, in *pb.ResetPasswordRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ChangePassword(ctx context.Context, in *pb.ChangePasswordRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ChangeMasterPassword(ctx context.Context, in *pb.ChangeMasterPasswordRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	CreateCredential(ctx context.Context, in *pb.CreateCredentialRequest, opts ...grpc.CallOption) (*pb.CredentialResponse, error)
	UpdateCredential(ctx context.Context, in *pb.UpdateCredentialRequest, opts ...grpc.CallOption) (*pb.CredentialResponse, error)
	RevealCredential(ctx context.Context, in *pb.RevealCredentialRequest, opts ...grpc.CallOption) (*pb.RevealCredentialResponse, error)
	DeleteCredential(ctx context.Context, in *pb.DeleteCredentialRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetCredential(ctx context.Context, in *pb.GetCredentialRequest, opts ...grpc.CallOption) (*pb.CredentialResponse, error)
	ListCredentials(ctx context.Context, in *pb.ListCredentialsRequest, opts ...grpc.CallOption) (*pb.ListCredentialsResponse, error)
	ExportBackup(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*pb.ExportBackupResponse, error)
}

// connectFunc opens a client for addr. The returned func releases it.
type connectFunc func(addr string) (vaultAPI, func() error, error)

func dialVault(addr string) (vaultAPI, func() error, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return pb.NewVaultClient(conn), conn.Close, nil
}

// App carries the state shared by every command.
type App struct {
	serverAddr string
	token      string
	connect    connectFunc
}

// NewRootCmd builds the passkeeper command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{connect: dialVault})
}

func newRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "passkeeper",
		Short:         "passkeeper is a credential vault client",
		Long:          `Generate and score passwords locally, and manage accounts and credentials stored on a passkeeper server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&a.serverAddr, "server", "s", envOr(EnvServer, defaultServerAddr), "address of the vault server (env "+EnvServer+")")
	root.PersistentFlags().StringVarP(&a.token, "token", "t", os.Getenv(EnvToken), "session token (env "+EnvToken+")")

	root.AddCommand(
		a.generateCmd(),
		a.scoreCmd(),
		a.registerCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.recoverCmd(),
		a.resetCmd(),
		a.passwdCmd(),
		a.addCmd(),
		a.editCmd(),
		a.listCmd(),
		a.showCmd(),
		a.revealCmd(),
		a.deleteCmd(),
		a.exportCmd(),
	)
	return root
}

// Execute runs the command tree and prints a failure to stderr.
func Execute(ctx context.Context) int {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// withVault connects, runs fn and closes the connection. Authenticated
// calls get the session token attached to ctx.
func (a *App) withVault(ctx context.Context, authenticated bool, fn func(context.Context, vaultAPI) error) error {
	if authenticated {
		if a.token == "" {
			return ErrNotLoggedIn
		}
		ctx = vault.WithAccessToken(ctx, a.token)
	}

	client, closeFn, err := a.connect(a.serverAddr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer closeFn()

	return mapError(fn(ctx, client))
}

// mapError turns gRPC status errors into messages fit for a terminal.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	default:
		return errors.New(st.Message())
	}
}
