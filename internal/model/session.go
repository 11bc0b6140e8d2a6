package model

import "time"

// Session binds a user to the token adopted verbatim from the identity
// provider. Expired rows are rejected at lookup, never deleted automatically.
type Session struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	SessionToken string    `db:"session_token" json:"-"`
	ExpiresAt    time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type CreateSessionParams struct {
	ID           string
	UserID       string
	SessionToken string
	ExpiresAt    time.Time
}
