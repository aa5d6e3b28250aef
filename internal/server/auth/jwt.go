// Package auth signs and verifies session tokens and compares stored
// passwords.
package auth

import (
	"time"

	"github.com/dmitrijs2005/credvault/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session id (jti) and the username (sub) of a session.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token that references the server-side session
// sessionID and expires at expiresAt.
func GenerateToken(sessionID, username string, secretKey []byte, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseTokenIgnoringExpiry verifies the signature and returns the claims.
// Expiry is left to the caller: a session's lifetime is judged on the stored
// session, and ending a session must also work for expired tokens. Any failure
// is reported as common.ErrInvalidToken.
func ParseTokenIgnoringExpiry(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithoutClaimsValidation(), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.ID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
