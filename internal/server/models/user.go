package models

import "time"

// User is a registered account. PasswordHash is the bcrypt hash of the
// login password and must never leave the server.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
