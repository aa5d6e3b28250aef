// Package client talks to the credvault server.
//
// GRPCClient wraps the generated-style CredVault stub, keeps the session token
// returned by Login and attaches it to every later call as "session_token"
// metadata. gRPC status codes are mapped back onto the sentinel errors of
// internal/common so callers can use errors.Is:
//
//   - AlreadyExists    -> common.ErrDuplicateUser
//   - Unauthenticated  -> common.ErrInvalidCredentials or common.ErrNotAuthenticated
//   - InvalidArgument  -> common.ErrorValidation
//   - Unavailable      -> common.ErrStoreUnavailable, or common.ErrUnavailable
//     when the server itself cannot be reached
package client
