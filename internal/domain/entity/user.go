// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a persisted identity record in the user directory.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique handle, also accepted as a sign-in identifier.
	Email        string    // Unique primary email, also accepted as a sign-in identifier.
	PasswordHash string    // bcrypt hash; empty for accounts that only ever signed in through OAuth.
	Verified     bool      // Whether the account may sign in with credentials.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// HasPassword reports whether the account can be used with the credential flow.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// Credentials is the transient identifier/secret pair of a single sign-in attempt.
type Credentials struct {
	Identifier string // Username or email.
	Password   string
}

// OAuthProfile is the identity an OAuth provider returned after the code exchange.
type OAuthProfile struct {
	Provider       ProviderType
	ProviderUserID string
	Email          string
	Name           string
	AvatarURL      string
}

// DefaultUsername is the username given to a user first seen through this profile:
// the display name, or the local part of the email when the provider sent none.
func (p *OAuthProfile) DefaultUsername() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}

	local, _, _ := strings.Cut(p.Email, "@")

	return local
}
