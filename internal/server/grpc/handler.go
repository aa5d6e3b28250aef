package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/credvault/internal/common"
	pb "github.com/dmitrijs2005/credvault/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) Register(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {

	username, password, err := credentials(req)
	if err != nil {
		return nil, err
	}

	id, err := s.credentials.Register(ctx, username, password)
	if err != nil {
		return nil, toStatus(err)
	}

	return wrapperspb.Int64(id), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {

	username, password, err := credentials(req)
	if err != nil {
		return nil, err
	}

	token, err := s.credentials.Login(ctx, username, password)
	if err != nil {
		return nil, toStatus(err)
	}

	return wrapperspb.String(token), nil
}

func (s *GRPCServer) ListAccounts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {

	accounts, err := s.credentials.ListAccounts(ctx, sessionToken(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]pb.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, pb.Account{ID: a.ID, Name: a.Name, Password: a.Password})
	}

	return pb.EncodeAccounts(out), nil
}

func (s *GRPCServer) AddAccount(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {

	name, err := pb.StringField(req, pb.FieldAccountName)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	password, err := pb.StringField(req, pb.FieldAccountPassword)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := s.credentials.AddAccount(ctx, sessionToken(ctx), name, password)
	if err != nil {
		return nil, toStatus(err)
	}

	return wrapperspb.Int64(id), nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {

	if err := s.credentials.DeleteAccount(ctx, sessionToken(ctx), req.GetValue()); err != nil {
		return nil, toStatus(err)
	}

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {

	s.credentials.Logout(ctx, sessionToken(ctx))

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {

	return wrapperspb.String("OK"), nil
}

func credentials(req *structpb.Struct) (string, string, error) {
	username, err := pb.StringField(req, pb.FieldUsername)
	if err != nil {
		return "", "", status.Error(codes.InvalidArgument, err.Error())
	}
	password, err := pb.StringField(req, pb.FieldPassword)
	if err != nil {
		return "", "", status.Error(codes.InvalidArgument, err.Error())
	}
	return username, password, nil
}

// toStatus maps service errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateUser):
		return status.Error(codes.AlreadyExists, common.ErrDuplicateUser.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrNotAuthenticated):
		return status.Error(codes.Unauthenticated, common.ErrNotAuthenticated.Error())
	case errors.Is(err, common.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, common.ErrStoreUnavailable.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, common.ErrorValidation.Error())
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}
