package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// fail converts err to a status and logs anything that is not the
// caller's fault.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, op+" failed", "error", err)
	}
	return st
}

func (s *GRPCServer) ownerID(ctx context.Context) (string, error) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "unauthorized")
	}
	return session.AccountID, nil
}

// Register answers a taken email the same way as a fresh one; the owner
// of the existing account is told about the attempt instead.
func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	_, err := s.accounts.Register(ctx, services.Registration{
		Email:          req.GetEmail(),
		DisplayName:    req.GetDisplayName(),
		Password:       req.GetPassword(),
		MasterPassword: req.GetMasterPassword(),
	})
	if err != nil && !errors.Is(err, common.ErrEmailTaken) {
		return nil, s.fail(ctx, "register", err)
	}
	return &pb.RegisterResponse{}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, err := s.accounts.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "login", err)
	}
	return &pb.LoginResponse{AccessToken: token}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.accounts.Logout(ctx, accessToken(ctx)); err != nil {
		return nil, s.fail(ctx, "logout", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) RequestRecovery(ctx context.Context, req *pb.RequestRecoveryRequest) (*emptypb.Empty, error) {
	if err := s.accounts.RequestRecovery(ctx, req.GetEmail()); err != nil {
		return nil, s.fail(ctx, "request recovery", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*emptypb.Empty, error) {
	if err := s.accounts.ResetPassword(ctx, req.GetToken(), req.GetNewPassword()); err != nil {
		return nil, s.fail(ctx, "reset password", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*emptypb.Empty, error) {
	owner, err := s.ownerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.accounts.ChangePassword(ctx, owner, req.GetCurrentPassword(), req.GetNewPassword()); err != nil {
		return nil, s.fail(ctx, "change password", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ChangeMasterPassword(ctx context.Context, req *pb.ChangeMasterPasswordRequest) (*emptypb.Empty, error) {
	owner, err := s.ownerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.accounts.ChangeMasterPassword(ctx, owner, req.GetCurrentMasterPassword(), req.GetNewMasterPassword()); err != nil {
		return nil, s.fail(ctx, "change master password", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GeneratePassword(ctx context.Context, req *pb.GeneratePasswordRequest) (*pb.GeneratePasswordResponse, error) {
	g, err := s.passwords.Generate(generationOptions(req.GetOptions()))
	if err != nil {
		return nil, s.fail(ctx, "generate password", err)
	}
	return &pb.GeneratePasswordResponse{Password: g.Password, Strength: strengthResult(g.Strength)}, nil
}

func (s *GRPCServer) ScorePassword(_ context.Context, req *pb.ScorePasswordRequest) (*pb.ScorePasswordResponse, error) {
	return &pb.ScorePasswordResponse{Strength: strengthResult(s.passwords.Score(req.GetPassword()))}, nil
}

func (s *GRPCServer) CreateCredential(ctx context.Context, req *pb.CreateCredentialRequest) (*pb.CredentialResponse, error) {
	owner, err := s.ownerID(ctx)
	if err != nil {
		return nil, err
	}
	in := services.NewCredential{
		Title:      req.GetTitle(),
		Secret:     req.GetSecret(),
		LoginName:  req.LoginName,
		LoginEmail: req.LoginEmail,
		URL:        req.Url,
		Notes:      req.Notes,
		IsFavorite: req.GetIsFavorite(),
		Category:   req.GetCategory(),
	}
	if req.Generate != nil {
		opts := generationOptions(req.Generate)
		in.Generate = &opts
	}
	v, err := s.credentials.Create(ctx, owner, in)
	if err != nil {
		return nil, s.fail(ctx, "create credential", err)
	}
	return &pb.CredentialResponse{Credential: credential(v)}, nil
}

func (s *GRPCServer) UpdateCredential(ctx context.Context, req *pb.UpdateCredentialRequest) (*pb.CredentialResponse, error) {
	owner, err := s.ownerID(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.credentials.Update(ctx, owner, req.GetId(), credentialPatch(req))
	if err != nil {
		return nil, s.fail(ctx, "update credential", err)
	}
	return &pb.CredentialResponse{Credential: credential(v)}, nil
}

// RevealCredential checks the master password and only then decrypts.
func (s *GRPCServer) RevealCredential(ctx context.Context, req *pb.RevealCredentialRequest) (*pb.RevealCredentialResponse, error) {
	owner, err := s.ownerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.accounts.VerifyMaster(ctx, owner, req.GetMasterPassword()); err != nil {
		return nil, s.fail(ctx, "verify master", err)
	}
	secret, err := s.credentials.Reveal(ctx, owner, req.GetId())
	if err != nil {
		return nil, s.fail(ctx, "reveal credential", err)
	}
	return &pb.RevealCredentialResponse{Secret: secret}, nil
}

func (s *GRPCServer) DeleteCredential(ctx context.Context, req *pb.DeleteCredentialRequest) (*emptypb.Empty, error) {
	owner, err := s.ownerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.credentials.Delete(ctx, owner, req.GetId()); err != nil {
		return nil, s.fail(ctx, "delete credential", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetCredential(ctx context.Context, req *pb.GetCredentialRequest) (*pb.CredentialResponse, error) {
	owner, err := s.ownerID(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.credentials.Get(ctx, owner, req.GetId())
	if err != nil {
		return nil, s.fail(ctx, "get credential", err)
	}
	return &pb.CredentialResponse{Credential: credential(v)}, nil
}

func (s *GRPCServer) ListCredentials(ctx context.Context, req *pb.ListCredentialsRequest) (*pb.ListCredentialsResponse, error) {
	owner, err := s.ownerID(ctx)
	if err != nil {
		return nil, err
	}

	filter := models.CredentialFilter{FavoriteOnly: req.GetFavoriteOnly(), Search: req.GetSearch()}
	if strings.TrimSpace(req.GetCategory()) != "" {
		c, err := models.ParseCategory(req.GetCategory())
		if err != nil {
			return nil, s.fail(ctx, "list credentials", err)
		}
		filter.Category = &c
	}

	list, err := s.credentials.List(ctx, owner, filter)
	if err != nil {
		return nil, s.fail(ctx, "list credentials", err)
	}
	out := make([]*pb.Credential, 0, len(list))
	for _, v := range list {
		out = append(out, credential(v))
	}
	return &pb.ListCredentialsResponse{Credentials: out}, nil
}

func (s *GRPCServer) ExportBackup(ctx context.Context, _ *emptypb.Empty) (*pb.ExportBackupResponse, error) {
	owner, err := s.ownerID(ctx)
	if err != nil {
		return nil, err
	}
	b, err := s.backups.Export(ctx, owner)
	if err != nil {
		return nil, s.fail(ctx, "export backup", err)
	}
	return &pb.ExportBackupResponse{Key: b.Key, DownloadUrl: b.DownloadURL, Count: int32(b.Count)}, nil
}
