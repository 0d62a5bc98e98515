package travelbuddy

import "strings"

// Profile is the transient session-scoped view of the signed-in user. It is
// never persisted directly: each session rebuilds it from the authentication
// collaborator's identity plus the remembered role preference.
type Profile struct {
	Name         string
	Email        string
	IsFirstLogin bool
	Role         Role
}

// NewProfile builds the session profile for a signed-in identity. An empty
// display name falls back to the local part of the email, then to a generic
// traveller name.
func NewProfile(name, email string, isFirstLogin bool, role Role) Profile {
	if name == "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			name = email[:at]
		} else {
			name = "Traveller"
		}
	}
	return Profile{Name: name, Email: email, IsFirstLogin: isFirstLogin, Role: role}
}
