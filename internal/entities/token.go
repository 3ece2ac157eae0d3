// Package entities contains core business entities.
package entities

import "time"

// InviteToken is a single-use, hashed, time-limited credential that moves a
// user from invited to active. The raw token is never stored.
type InviteToken struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	CreatedAt *time.Time
}

// Expired reports whether the token is past its expiry at the given time.
func (t InviteToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Invitation is the result of inviting a user: the persisted account plus
// the raw token handed back for email delivery.
type Invitation struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	RawToken string `json:"invite_token"`
	Reinvite bool   `json:"-"`
}
