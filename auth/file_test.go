package auth

import (
	"errors"
	"testing"
)

func newTestProvider(t *testing.T) *FileProvider {
	t.Helper()
	return NewFileProvider(t.TempDir())
}

func TestSignUpAndSignIn(t *testing.T) {
	p := newTestProvider(t)

	id, err := p.SignUp("Ana", "Ana@Example.com", "secret1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if id.Email != "ana@example.com" {
		t.Errorf("SignUp email = %q, want normalized lowercase", id.Email)
	}

	// sign up signs in
	if cur, err := p.Current(); err != nil || cur.Email != "ana@example.com" {
		t.Errorf("Current after SignUp = %v, %v", cur, err)
	}

	if err := p.SignOut(); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if _, err := p.Current(); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("Current after SignOut = %v, want ErrNotSignedIn", err)
	}

	id, err = p.SignIn("ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if id.Name != "Ana" {
		t.Errorf("SignIn name = %q, want Ana", id.Name)
	}
}

func TestSignUpRejects(t *testing.T) {
	p := newTestProvider(t)
	if _, err := p.SignUp("Ana", "ana@example.com", "secret1"); err != nil {
		t.Fatalf("seed SignUp: %v", err)
	}

	tests := []struct {
		name, email, password string
		want                  error
	}{
		{"taken email", "ana@example.com", "secret1", ErrEmailInUse},
		{"bad email", "not-an-email", "secret1", ErrInvalidEmail},
		{"short password", "bob@example.com", "12345", ErrWeakPassword},
		{"no password", "bob@example.com", "", ErrMissingCredentials},
		{"no email", "", "secret1", ErrMissingCredentials},
	}
	for _, tc := range tests {
		if _, err := p.SignUp("Bob", tc.email, tc.password); !errors.Is(err, tc.want) {
			t.Errorf("SignUp(%s) = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestSignInRejects(t *testing.T) {
	p := newTestProvider(t)
	if _, err := p.SignUp("Ana", "ana@example.com", "secret1"); err != nil {
		t.Fatalf("seed SignUp: %v", err)
	}

	if _, err := p.SignIn("nobody@example.com", "secret1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("SignIn unknown = %v, want ErrUserNotFound", err)
	}
	if _, err := p.SignIn("ana@example.com", "wrong-pass"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("SignIn wrong password = %v, want ErrWrongPassword", err)
	}
	if _, err := p.SignIn("", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("SignIn empty = %v, want ErrMissingCredentials", err)
	}
}

func TestSignOutTwice(t *testing.T) {
	p := newTestProvider(t)
	if err := p.SignOut(); err != nil {
		t.Errorf("SignOut with no session: %v", err)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidEmail, "Please enter a valid email address."},
		{ErrWeakPassword, "Password should be at least 6 characters."},
		{ErrEmailInUse, "This email is already registered. Try logging in."},
		{ErrUserNotFound, "Invalid email or password."},
		{ErrWrongPassword, "Invalid email or password."},
		{ErrMissingCredentials, "Please enter both email and password."},
		{errors.New("boom"), "boom"},
		{nil, ""},
	}
	for _, tc := range tests {
		if got := Message(tc.err); got != tc.want {
			t.Errorf("Message(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
