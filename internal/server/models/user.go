package models

import "time"

// User is an account record. PasswordHash is the output of the injected
// one-way hash; the plaintext password is never persisted.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
