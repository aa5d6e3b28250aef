// Package models holds the server-side records persisted by the credential
// store: users, the accounts they own, and login sessions.
package models
