package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credvault/internal/common"
	"golang.org/x/crypto/bcrypt"
)

const (
	SchemePlain  = "plain"
	SchemeBcrypt = "bcrypt"
)

// PasswordScheme decides how a user password is stored and verified.
type PasswordScheme interface {
	Hash(password string) (string, error)
	Compare(stored, candidate string) bool
}

// NewPasswordScheme returns the scheme registered under name.
func NewPasswordScheme(name string) (PasswordScheme, error) {
	switch name {
	case SchemePlain, "":
		return PlainScheme{}, nil
	case SchemeBcrypt:
		return BcryptScheme{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}

// PlainScheme stores passwords as entered.
type PlainScheme struct{}

func (PlainScheme) Hash(password string) (string, error) { return password, nil }

func (PlainScheme) Compare(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// BcryptScheme stores bcrypt hashes.
type BcryptScheme struct {
	Cost int
}

func (s BcryptScheme) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password too long", common.ErrorValidation)
		}
		return "", err
	}
	return string(h), nil
}

func (s BcryptScheme) Compare(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
