package models

import "time"

// Session binds a session id to the username that authenticated it.
type Session struct {
	ID        string
	UserName  string
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
