package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a row of the auth_user table. Email is the primary key.
// PasswordHash is never serialized to clients.
type User struct {
	Email        string    `json:"email"`
	ID           uuid.UUID `json:"id"`
	PasswordHash string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	IsActive     bool      `json:"is_active"`
}

// SessionTTL is how long a session stays fresh after signup or login.
const SessionTTL = 24 * time.Hour

// NewUser builds a signup row: fresh id, expiry one day out, inactive
// until the first login.
func NewUser(email, passwordHash string, now time.Time) *User {
	return &User{
		Email:        email,
		ID:           uuid.New(),
		PasswordHash: passwordHash,
		ExpiresAt:    now.UTC().Add(SessionTTL),
		IsActive:     false,
	}
}
