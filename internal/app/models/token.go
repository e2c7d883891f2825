package models

import "time"

// RefreshToken is a persisted long-lived token used to obtain new access tokens
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	Token     string    `json:"token" db:"token"`
	UserID    int64     `json:"userId" db:"user_id"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Valid reports whether the token can still be exchanged
func (t *RefreshToken) Valid() bool {
	return !t.Revoked && time.Now().Before(t.ExpiresAt)
}

// PasswordResetToken is a single-use token mailed to a user for password recovery
type PasswordResetToken struct {
	ID        int64     `json:"id" db:"id"`
	Token     string    `json:"token" db:"token"`
	UserID    int64     `json:"userId" db:"user_id"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Used      bool      `json:"used" db:"used"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
