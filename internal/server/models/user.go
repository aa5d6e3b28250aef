package models

// User is a vault owner. Password holds whatever the configured password
// scheme stores: the master password itself for "plain", a bcrypt hash otherwise.
type User struct {
	ID       int64
	UserName string
	Password string
}
