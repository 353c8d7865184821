package entity

import "time"

// AuthEvent is the outcome of one successful authentication, handed to the token enricher.
type AuthEvent struct {
	User     *User
	Provider ProviderType
}

// SessionToken carries the identity claims that survive between requests.
type SessionToken struct {
	UserID    string
	Username  string
	Email     string
	Verified  bool
	Provider  ProviderType
	SessionID string // Set only for server-held sessions.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SessionUser is the identity part of the session view.
type SessionUser struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username,omitempty"`
	Verified bool   `json:"isVerified"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// SessionView is what application code sees for the current request. It is derived from
// the session token and never mutated on its own.
type SessionView struct {
	User    SessionUser `json:"user"`
	Expires *time.Time  `json:"expires,omitempty"`
}
