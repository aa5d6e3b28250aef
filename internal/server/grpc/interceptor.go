package grpc

import (
	"context"

	"github.com/dmitrijs2005/credvault/internal/common"
	pb "github.com/dmitrijs2005/credvault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const sessionTokenKey ctxKey = "sessionToken"

// protectedMethods cannot be called without a session token.
var protectedMethods = map[string]bool{
	pb.CredVault_ListAccounts_FullMethodName:  true,
	pb.CredVault_AddAccount_FullMethodName:    true,
	pb.CredVault_DeleteAccount_FullMethodName: true,
}

// sessionTokenInterceptor copies the session token from metadata into the
// context. Whether the session is active is decided by the service.
func (s *GRPCServer) sessionTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.SessionTokenHeaderName)
		if len(values) > 0 {
			token = values[0]
		}
	}

	if token == "" && protectedMethods[info.FullMethod] {
		return nil, status.Error(codes.Unauthenticated, "missing session token")
	}

	if token != "" {
		ctx = context.WithValue(ctx, sessionTokenKey, token)
	}

	return handler(ctx, req)
}

func sessionToken(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey).(string)
	return token
}
