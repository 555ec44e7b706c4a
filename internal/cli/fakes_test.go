package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type fakeVault struct {
	err   error
	token string

	register *pb.RegisterRequest
	login    *pb.LoginRequest
	recovery *pb.RequestRecoveryRequest
	reset    *pb.ResetPasswordRequest
	change   *pb.ChangePasswordRequest
	master   *pb.ChangeMasterPasswordRequest
	create   *pb.CreateCredentialRequest
	update   *pb.UpdateCredentialRequest
	reveal   *pb.RevealCredentialRequest
	deleted  string
	list     *pb.ListCredentialsRequest
	logouts  int

	credentials []*pb.Credential
}

func (f *fakeVault) seen(ctx context.Context) {
	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
			f.token = v[0]
		}
	}
}

func (f *fakeVault) Register(ctx context.Context, in *pb.RegisterRequest, _ ...grpc.CallOption) (*pb.RegisterResponse, error) {
	f.register = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.RegisterResponse{}, nil
}

func (f *fakeVault) Login(ctx context.Context, in *pb.LoginRequest, _ ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.login = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.LoginResponse{AccessToken: "session-token"}, nil
}

func (f *fakeVault) Logout(ctx context.Context, _ *emptypb.Empty, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	f.seen(ctx)
	f.logouts++
	return &emptypb.Empty{}, f.err
}

func (f *fakeVault) RequestRecovery(ctx context.Context, in *pb.RequestRecoveryRequest, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	f.recovery = in
	return &emptypb.Empty{}, f.err
}

func (f *fakeVault) ResetPassword(ctx context.Context, in *pb.ResetPasswordRequest, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	f.reset = in
	return &emptypb.Empty{}, f.err
}

func (f *fakeVault) ChangePassword(ctx context.Context, in *pb.ChangePasswordRequest, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	f.seen(ctx)
	f.change = in
	return &emptypb.Empty{}, f.err
}

func (f *fakeVault) ChangeMasterPassword(ctx context.Context, in *pb.ChangeMasterPasswordRequest, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	f.seen(ctx)
	f.master = in
	return &emptypb.Empty{}, f.err
}

func (f *fakeVault) CreateCredential(ctx context.Context, in *pb.CreateCredentialRequest, _ ...grpc.CallOption) (*pb.CredentialResponse, error) {
	f.seen(ctx)
	f.create = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.CredentialResponse{Credential: &pb.Credential{Id: "cred-1", Title: in.GetTitle(), Category: "other"}}, nil
}

func (f *fakeVault) UpdateCredential(ctx context.Context, in *pb.UpdateCredentialRequest, _ ...grpc.CallOption) (*pb.CredentialResponse, error) {
	f.seen(ctx)
	f.update = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.CredentialResponse{Credential: testView()}, nil
}

func (f *fakeVault) RevealCredential(ctx context.Context, in *pb.RevealCredentialRequest, _ ...grpc.CallOption) (*pb.RevealCredentialResponse, error) {
	f.seen(ctx)
	f.reveal = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.RevealCredentialResponse{Secret: "hunter2"}, nil
}

func (f *fakeVault) DeleteCredential(ctx context.Context, in *pb.DeleteCredentialRequest, _ ...grpc.CallOption) (*emptypb.Empty, error) {
	f.seen(ctx)
	f.deleted = in.GetId()
	return &emptypb.Empty{}, f.err
}

func (f *fakeVault) GetCredential(ctx context.Context, in *pb.GetCredentialRequest, _ ...grpc.CallOption) (*pb.CredentialResponse, error) {
	f.seen(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &pb.CredentialResponse{Credential: testView()}, nil
}

func (f *fakeVault) ListCredentials(ctx context.Context, in *pb.ListCredentialsRequest, _ ...grpc.CallOption) (*pb.ListCredentialsResponse, error) {
	f.seen(ctx)
	f.list = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ListCredentialsResponse{Credentials: f.credentials}, nil
}

func (f *fakeVault) ExportBackup(ctx context.Context, _ *emptypb.Empty, _ ...grpc.CallOption) (*pb.ExportBackupResponse, error) {
	f.seen(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExportBackupResponse{Key: "backups/acc-1/x.json", DownloadUrl: "https://s3.local/x", Count: 3}, nil
}

func testView() *pb.Credential {
	login := "octocat"
	return &pb.Credential{
		Id:           "cred-1",
		Title:        "GitHub",
		LoginName:    &login,
		Category:     "work",
		IsFavorite:   true,
		HistoryCount: 2,
		CreatedAt:    timestamppb.New(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)),
	}
}

// stubPasswords feeds answers to successive hidden prompts.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no more input")
		}
		a := answers[0]
		answers = answers[1:]
		return []byte(a), nil
	}
}

// run executes the command tree against fake and returns stdout.
func run(t *testing.T, fake *fakeVault, args ...string) (string, error) {
	t.Helper()
	t.Setenv(EnvToken, "")
	t.Setenv(EnvServer, "")

	a := &App{connect: func(addr string) (vaultAPI, func() error, error) {
		require.Equal(t, defaultServerAddr, addr)
		return fake, func() error { return nil }, nil
	}}

	root := newRootCmd(a)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}
