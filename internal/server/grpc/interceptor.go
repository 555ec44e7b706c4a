package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const sessionKey ctxKey = "session"

// publicMethods are callable without a session token.
var publicMethods = map[string]bool{
	pb.Vault_Register_FullMethodName:         true,
	pb.Vault_Login_FullMethodName:            true,
	pb.Vault_RequestRecovery_FullMethodName:  true,
	pb.Vault_ResetPassword_FullMethodName:    true,
	pb.Vault_GeneratePassword_FullMethodName: true,
	pb.Vault_ScorePassword_FullMethodName:    true,
}

// WithAccessToken attaches a session token to outgoing calls made with ctx.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)
}

// accessToken returns the session token from the incoming metadata.
func accessToken(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// sessionFromContext returns the session stored by the interceptor.
func sessionFromContext(ctx context.Context) (*auth.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*auth.Session)
	return s, ok
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	token := accessToken(ctx)
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	session, err := s.accounts.Authenticate(ctx, token)
	if err != nil {
		return nil, toStatus(err)
	}

	return handler(context.WithValue(ctx, sessionKey, session), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(),
		"duration", time.Since(start))
	return resp, err
}
