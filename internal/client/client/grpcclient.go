package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/credvault/internal/common"
	pb "github.com/dmitrijs2005/credvault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.CredVaultClient

	mu           sync.RWMutex
	sessionToken string
}

// NewCredVaultClient connects to endpointURL. Extra dial options are appended
// after the insecure transport credentials.
func NewCredVaultClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}

	return &GRPCClient{conn: conn, client: pb.NewCredVaultClient(conn)}, nil
}

func withSessionToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// authed attaches the current session token to ctx and returns the token it
// attached.
func (s *GRPCClient) authed(ctx context.Context) (context.Context, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return withSessionToken(ctx, s.sessionToken), s.sessionToken
}

// sessionError maps err and forgets token once the server no longer honours
// it. A token replaced by a newer login in the meantime is kept.
func (s *GRPCClient) sessionError(token string, err error) error {
	err = mapError(err)
	if errors.Is(err, common.ErrNotAuthenticated) {
		s.mu.Lock()
		if s.sessionToken == token {
			s.sessionToken = ""
		}
		s.mu.Unlock()
	}
	return err
}

// LoggedIn reports whether the client holds a session token.
func (s *GRPCClient) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionToken != ""
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionToken = token
}

func (s *GRPCClient) Register(ctx context.Context, userName, password string) (int64, error) {

	resp, err := s.client.Register(ctx, pb.NewCredentialsRequest(userName, password))
	if err != nil {
		return 0, mapError(err)
	}

	return resp.GetValue(), nil
}

// Login authenticates and keeps the session token for later calls.
func (s *GRPCClient) Login(ctx context.Context, userName, password string) error {

	resp, err := s.client.Login(ctx, pb.NewCredentialsRequest(userName, password))
	if err != nil {
		return mapError(err)
	}

	s.setToken(resp.GetValue())
	return nil
}

func (s *GRPCClient) ListAccounts(ctx context.Context) ([]pb.Account, error) {

	ctx, token := s.authed(ctx)
	resp, err := s.client.ListAccounts(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.sessionError(token, err)
	}

	accounts, err := pb.DecodeAccounts(resp)
	if err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	return accounts, nil
}

func (s *GRPCClient) AddAccount(ctx context.Context, name, password string) (int64, error) {

	ctx, token := s.authed(ctx)
	resp, err := s.client.AddAccount(ctx, pb.NewAddAccountRequest(name, password))
	if err != nil {
		return 0, s.sessionError(token, err)
	}

	return resp.GetValue(), nil
}

func (s *GRPCClient) DeleteAccount(ctx context.Context, id int64) error {

	ctx, token := s.authed(ctx)
	if _, err := s.client.DeleteAccount(ctx, wrapperspb.Int64(id)); err != nil {
		return s.sessionError(token, err)
	}

	return nil
}

// Logout ends the server session and forgets the token. The token is dropped
// even when the call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {

	ctx, _ = s.authed(ctx)
	_, err := s.client.Logout(ctx, &emptypb.Empty{})
	s.setToken("")

	if err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return mapError(err)
	}

	if resp.GetValue() != "OK" {
		return common.ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.AlreadyExists:
		return common.ErrDuplicateUser
	case codes.Unauthenticated:
		if st.Message() == common.ErrInvalidCredentials.Error() {
			return common.ErrInvalidCredentials
		}
		return common.ErrNotAuthenticated
	case codes.InvalidArgument:
		return common.ErrorValidation
	case codes.Unavailable:
		if st.Message() == common.ErrStoreUnavailable.Error() {
			return common.ErrStoreUnavailable
		}
		return common.ErrUnavailable
	case codes.DeadlineExceeded:
		return common.ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
