package auth

import (
	"github.com/dmitrijs2005/taskdeck/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is bcrypt's input limit; longer passwords are rejected
// here rather than silently truncated.
const MaxPasswordLength = 72

// HashPassword hashes a plaintext password with a per-call random salt.
// Cost is the bcrypt cost factor; values below bcrypt.MinCost fall back to
// bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if len(password) > MaxPasswordLength {
		return "", common.ErrPasswordTooLong
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// Malformed hashes simply compare as false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
