// Package auth implements the stateless parts of the security boundary:
// JWT issuance/validation and bcrypt password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/taskdeck/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues a signed token asserting userID for validityDuration.
// The claim set is sub/iat/exp; nothing about the token is stored server-side.
func GenerateToken(userID string, secretKey []byte, method string, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.GetSigningMethod(method), jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies signature and expiry and returns the subject.
// Expired tokens yield common.ErrTokenExpired; any other defect (bad
// signature, wrong algorithm, malformed structure, missing subject) yields
// common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte, method string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{method}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
