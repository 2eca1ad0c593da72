package models

import "time"

// Session is the server-side half of a login. The token handed to the client
// is a signed wrapper around ID; deleting the row revokes the login even if
// the token itself has not expired yet.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
