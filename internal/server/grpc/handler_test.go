package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/credvault/internal/common"
	pb "github.com/dmitrijs2005/credvault/internal/proto"
	"github.com/dmitrijs2005/credvault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ---- fakes ----

type fakeCredentials struct {
	regID  int64
	regErr error

	token    string
	loginErr error

	accounts []models.Account
	listErr  error

	addID  int64
	addErr error

	deleteErr error

	gotToken    string
	gotUsername string
	gotPassword string
	gotName     string
	gotID       int64
	loggedOut   []string
}

func (f *fakeCredentials) Register(_ context.Context, username, password string) (int64, error) {
	f.gotUsername, f.gotPassword = username, password
	return f.regID, f.regErr
}

func (f *fakeCredentials) Login(_ context.Context, username, password string) (string, error) {
	f.gotUsername, f.gotPassword = username, password
	return f.token, f.loginErr
}

func (f *fakeCredentials) ListAccounts(_ context.Context, token string) ([]models.Account, error) {
	f.gotToken = token
	return f.accounts, f.listErr
}

func (f *fakeCredentials) AddAccount(_ context.Context, token, name, password string) (int64, error) {
	f.gotToken, f.gotName, f.gotPassword = token, name, password
	return f.addID, f.addErr
}

func (f *fakeCredentials) DeleteAccount(_ context.Context, token string, accountID int64) error {
	f.gotToken, f.gotID = token, accountID
	return f.deleteErr
}

func (f *fakeCredentials) Logout(_ context.Context, token string) {
	f.loggedOut = append(f.loggedOut, token)
}

func ctxWithToken(token string) context.Context {
	return context.WithValue(context.Background(), sessionTokenKey, token)
}

func TestRegister_OK(t *testing.T) {
	f := &fakeCredentials{regID: 5}
	s := newTestServer(f)

	resp, err := s.Register(context.Background(), pb.NewCredentialsRequest("alice", "p1"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.GetValue())
	assert.Equal(t, "alice", f.gotUsername)
	assert.Equal(t, "p1", f.gotPassword)
}

func TestRegister_BadField(t *testing.T) {
	s := newTestServer(&fakeCredentials{})

	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		pb.FieldUsername: structpb.NewNumberValue(1),
	}}
	_, err := s.Register(context.Background(), req)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestLogin_OK(t *testing.T) {
	s := newTestServer(&fakeCredentials{token: "tok"})

	resp, err := s.Login(context.Background(), pb.NewCredentialsRequest("alice", "p1"))
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.GetValue())
}

func TestListAccounts_OK(t *testing.T) {
	f := &fakeCredentials{accounts: []models.Account{{ID: 1, UserID: 3, Name: "bank", Password: "secret"}}}
	s := newTestServer(f)

	resp, err := s.ListAccounts(ctxWithToken("tok"), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "tok", f.gotToken)

	got, err := pb.DecodeAccounts(resp)
	require.NoError(t, err)
	assert.Equal(t, []pb.Account{{ID: 1, Name: "bank", Password: "secret"}}, got)
}

func TestAddAccount_OK(t *testing.T) {
	f := &fakeCredentials{addID: 11}
	s := newTestServer(f)

	resp, err := s.AddAccount(ctxWithToken("tok"), pb.NewAddAccountRequest("bank", "secret"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.GetValue())
	assert.Equal(t, "bank", f.gotName)
	assert.Equal(t, "secret", f.gotPassword)
}

func TestDeleteAccount_OK(t *testing.T) {
	f := &fakeCredentials{}
	s := newTestServer(f)

	_, err := s.DeleteAccount(ctxWithToken("tok"), wrapperspb.Int64(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), f.gotID)
	assert.Equal(t, "tok", f.gotToken)
}

func TestLogout_AlwaysOK(t *testing.T) {
	f := &fakeCredentials{}
	s := newTestServer(f)

	_, err := s.Logout(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	_, err = s.Logout(ctxWithToken("tok"), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []string{"", "tok"}, f.loggedOut)
}

func TestPing(t *testing.T) {
	s := newTestServer(nil)
	resp, err := s.Ping(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.GetValue())
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{common.ErrDuplicateUser, codes.AlreadyExists},
		{common.ErrInvalidCredentials, codes.Unauthenticated},
		{common.ErrNotAuthenticated, codes.Unauthenticated},
		{common.ErrStoreUnavailable, codes.Unavailable},
		{common.ErrorValidation, codes.InvalidArgument},
		{fmt.Errorf("wrapped: %w", common.ErrDuplicateUser), codes.AlreadyExists},
		{errors.New("pq: relation does not exist"), codes.Internal},
	}

	for _, tt := range tests {
		st, ok := status.FromError(toStatus(tt.err))
		require.True(t, ok)
		assert.Equal(t, tt.code, st.Code(), tt.err.Error())
		assert.NotContains(t, st.Message(), "relation")
	}
}

func TestHandlers_MapServiceErrors(t *testing.T) {
	f := &fakeCredentials{
		regErr:    common.ErrDuplicateUser,
		loginErr:  common.ErrInvalidCredentials,
		listErr:   common.ErrNotAuthenticated,
		addErr:    common.ErrStoreUnavailable,
		deleteErr: common.ErrNotAuthenticated,
	}
	s := newTestServer(f)
	ctx := ctxWithToken("tok")

	_, err := s.Register(ctx, pb.NewCredentialsRequest("a", "b"))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
	_, err = s.Login(ctx, pb.NewCredentialsRequest("a", "b"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.ListAccounts(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.AddAccount(ctx, pb.NewAddAccountRequest("n", "p"))
	assert.Equal(t, codes.Unavailable, status.Code(err))
	_, err = s.DeleteAccount(ctx, wrapperspb.Int64(1))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
