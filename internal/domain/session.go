package domain

import "time"

// Session is one issued token pair. Tokens are stored hashed; the revoked
// flag doubles as the access-token blacklist consulted on every validation.
type Session struct {
	ID               string
	UserID           int
	AccessTokenHash  string
	RefreshTokenHash string
	ExpiresAt        time.Time
	RefreshExpiresAt time.Time
	RevokedAt        *time.Time
	IPAddress        string
	UserAgent        string
	CreatedAt        time.Time
}

// Revoked reports whether the session has been explicitly revoked.
func (s *Session) Revoked() bool {
	return s.RevokedAt != nil
}
