package models

// Account is a credential owned by exactly one user.
type Account struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"-"`
	Name     string `json:"account_name"`
	Password string `json:"account_password"`
}
