// Package auth provides the sign-in collaborator. The core never hands
// credentials around, it only consumes the Identity of whoever is signed in.
package auth

import (
	"errors"
	"strings"
)

// bcrypt cost factor (10-14 recommended for production)
const bcryptCost = 12

const minPasswordLength = 6

// Sentinel errors returned by providers. Callers compare with errors.Is and
// turn them into the user-facing messages of Message.
var (
	ErrInvalidEmail       = errors.New("auth: invalid email address")
	ErrMissingCredentials = errors.New("auth: email and password are required")
	ErrWeakPassword       = errors.New("auth: password is too short")
	ErrEmailInUse         = errors.New("auth: email already registered")
	ErrUserNotFound       = errors.New("auth: no account for this email")
	ErrWrongPassword      = errors.New("auth: wrong password")
	ErrNotSignedIn        = errors.New("auth: nobody is signed in")
)

// Identity is who is currently signed in, and all the core ever learns
// about them.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Provider is the authentication collaborator.
type Provider interface {
	// SignUp creates an account and signs it in.
	SignUp(name, email, password string) (Identity, error)
	// SignIn authenticates an existing account.
	SignIn(email, password string) (Identity, error)
	// SignOut ends the current session. Signing out twice is a no-op.
	SignOut() error
	// Current returns the signed-in identity, or ErrNotSignedIn.
	Current() (Identity, error)
}

// Message maps a provider error to the short message shown to the user.
// Unknown errors pass through unchanged.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email address."
	case errors.Is(err, ErrMissingCredentials):
		return "Please enter both email and password."
	case errors.Is(err, ErrWeakPassword):
		return "Password should be at least 6 characters."
	case errors.Is(err, ErrEmailInUse):
		return "This email is already registered. Try logging in."
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrWrongPassword):
		return "Invalid email or password."
	case err != nil:
		return err.Error()
	}
	return ""
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func validEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	at := strings.Index(email, "@")
	if at < 1 {
		return false
	}
	dot := strings.LastIndex(email, ".")
	return dot >= at+2 && dot < len(email)-1
}
