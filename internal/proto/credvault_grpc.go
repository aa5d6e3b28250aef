// Package proto declares the credvault.CredVault gRPC service. Messages are
// protobuf well-known types, so the service needs no generated code; the
// descriptor below follows the layout protoc-gen-go-grpc would produce.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "credvault.CredVault"

const (
	CredVault_Register_FullMethodName      = "/credvault.CredVault/Register"
	CredVault_Login_FullMethodName         = "/credvault.CredVault/Login"
	CredVault_ListAccounts_FullMethodName  = "/credvault.CredVault/ListAccounts"
	CredVault_AddAccount_FullMethodName    = "/credvault.CredVault/AddAccount"
	CredVault_DeleteAccount_FullMethodName = "/credvault.CredVault/DeleteAccount"
	CredVault_Logout_FullMethodName        = "/credvault.CredVault/Logout"
	CredVault_Ping_FullMethodName          = "/credvault.CredVault/Ping"
)

// CredVaultClient is the client API for the CredVault service.
type CredVaultClient interface {
	Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	ListAccounts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	AddAccount(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	DeleteAccount(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Logout(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type credVaultClient struct {
	cc grpc.ClientConnInterface
}

func NewCredVaultClient(cc grpc.ClientConnInterface) CredVaultClient {
	return &credVaultClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *credVaultClient) Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke[wrapperspb.Int64Value](ctx, c.cc, CredVault_Register_FullMethodName, in, opts)
}

func (c *credVaultClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, CredVault_Login_FullMethodName, in, opts)
}

func (c *credVaultClient) ListAccounts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke[structpb.ListValue](ctx, c.cc, CredVault_ListAccounts_FullMethodName, in, opts)
}

func (c *credVaultClient) AddAccount(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	return invoke[wrapperspb.Int64Value](ctx, c.cc, CredVault_AddAccount_FullMethodName, in, opts)
}

func (c *credVaultClient) DeleteAccount(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, CredVault_DeleteAccount_FullMethodName, in, opts)
}

func (c *credVaultClient) Logout(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, CredVault_Logout_FullMethodName, in, opts)
}

func (c *credVaultClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, CredVault_Ping_FullMethodName, in, opts)
}

// CredVaultServer is the server API for the CredVault service.
// Implementations must embed UnimplementedCredVaultServer.
type CredVaultServer interface {
	Register(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error)
	Login(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	ListAccounts(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	AddAccount(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error)
	DeleteAccount(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)
	Logout(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	mustEmbedUnimplementedCredVaultServer()
}

// UnimplementedCredVaultServer must be embedded to have forward compatible implementations.
type UnimplementedCredVaultServer struct{}

func (UnimplementedCredVaultServer) Register(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedCredVaultServer) Login(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedCredVaultServer) ListAccounts(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAccounts not implemented")
}
func (UnimplementedCredVaultServer) AddAccount(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddAccount not implemented")
}
func (UnimplementedCredVaultServer) DeleteAccount(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteAccount not implemented")
}
func (UnimplementedCredVaultServer) Logout(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedCredVaultServer) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedCredVaultServer) mustEmbedUnimplementedCredVaultServer() {}

func RegisterCredVaultServer(s grpc.ServiceRegistrar, srv CredVaultServer) {
	s.RegisterService(&CredVault_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc method handler.
func unaryHandler[Req any, Resp any](fullMethod string, call func(CredVaultServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CredVaultServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CredVaultServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CredVault_ServiceDesc is the grpc.ServiceDesc for the CredVault service.
var CredVault_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CredVaultServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    unaryHandler(CredVault_Register_FullMethodName, CredVaultServer.Register),
		},
		{
			MethodName: "Login",
			Handler:    unaryHandler(CredVault_Login_FullMethodName, CredVaultServer.Login),
		},
		{
			MethodName: "ListAccounts",
			Handler:    unaryHandler(CredVault_ListAccounts_FullMethodName, CredVaultServer.ListAccounts),
		},
		{
			MethodName: "AddAccount",
			Handler:    unaryHandler(CredVault_AddAccount_FullMethodName, CredVaultServer.AddAccount),
		},
		{
			MethodName: "DeleteAccount",
			Handler:    unaryHandler(CredVault_DeleteAccount_FullMethodName, CredVaultServer.DeleteAccount),
		},
		{
			MethodName: "Logout",
			Handler:    unaryHandler(CredVault_Logout_FullMethodName, CredVaultServer.Logout),
		},
		{
			MethodName: "Ping",
			Handler:    unaryHandler(CredVault_Ping_FullMethodName, CredVaultServer.Ping),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "credvault.proto",
}
