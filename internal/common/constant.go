// Package common contains shared constants and sentinel errors used across
// credvault components.
package common

// SessionTokenHeaderName is the gRPC metadata key used to carry the
// session token issued by Login.
const SessionTokenHeaderName = "session_token"
