package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// account is one stored credential record.
type account struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"createdAt"`
}

// FileProvider keeps accounts and the current session in two JSON files
// under a directory. It is the local-first counterpart of a hosted identity
// service, suitable for a single-user machine.
type FileProvider struct {
	dir string
}

// NewFileProvider returns a provider rooted at dir. The directory is created
// on first write.
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{dir: dir}
}

func (p *FileProvider) usersPath() string   { return filepath.Join(p.dir, "users.json") }
func (p *FileProvider) sessionPath() string { return filepath.Join(p.dir, "session.json") }

// SignUp implements Provider.
func (p *FileProvider) SignUp(name, email, password string) (Identity, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Identity{}, ErrMissingCredentials
	}
	if !validEmail(email) {
		return Identity{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return Identity{}, ErrWeakPassword
	}

	accounts, err := p.readAccounts()
	if err != nil {
		return Identity{}, err
	}
	if _, taken := accounts[email]; taken {
		return Identity{}, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return Identity{}, fmt.Errorf("could not hash password: %w", err)
	}
	name = strings.TrimSpace(name)
	accounts[email] = account{Name: name, Email: email, Hash: string(hash), CreatedAt: time.Now()}
	if err := p.writeAccounts(accounts); err != nil {
		return Identity{}, err
	}

	id := Identity{Name: name, Email: email}
	return id, p.writeSession(id)
}

// SignIn implements Provider.
func (p *FileProvider) SignIn(email, password string) (Identity, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Identity{}, ErrMissingCredentials
	}

	accounts, err := p.readAccounts()
	if err != nil {
		return Identity{}, err
	}
	acc, ok := accounts[email]
	if !ok {
		return Identity{}, ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.Hash), []byte(password)) != nil {
		return Identity{}, ErrWrongPassword
	}

	id := Identity{Name: acc.Name, Email: acc.Email}
	return id, p.writeSession(id)
}

// SignOut implements Provider.
func (p *FileProvider) SignOut() error {
	err := os.Remove(p.sessionPath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not end session: %w", err)
	}
	return nil
}

// Current implements Provider.
func (p *FileProvider) Current() (Identity, error) {
	data, err := os.ReadFile(p.sessionPath())
	if os.IsNotExist(err) {
		return Identity{}, ErrNotSignedIn
	}
	if err != nil {
		return Identity{}, fmt.Errorf("could not read session: %w", err)
	}
	var id Identity
	if err := json.Unmarshal(data, &id); err != nil || id.Email == "" {
		return Identity{}, ErrNotSignedIn
	}
	return id, nil
}

func (p *FileProvider) readAccounts() (map[string]account, error) {
	accounts := map[string]account{}
	data, err := os.ReadFile(p.usersPath())
	if os.IsNotExist(err) {
		return accounts, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read accounts: %w", err)
	}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("accounts file is corrupted: %w", err)
	}
	return accounts, nil
}

func (p *FileProvider) writeAccounts(accounts map[string]account) error {
	if err := os.MkdirAll(p.dir, 0o700); err != nil {
		return fmt.Errorf("could not create auth directory: %w", err)
	}
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.usersPath(), data, 0o600); err != nil {
		return fmt.Errorf("could not write accounts: %w", err)
	}
	return nil
}

func (p *FileProvider) writeSession(id Identity) error {
	if err := os.MkdirAll(p.dir, 0o700); err != nil {
		return fmt.Errorf("could not create auth directory: %w", err)
	}
	data, err := json.Marshal(id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.sessionPath(), data, 0o600); err != nil {
		return fmt.Errorf("could not write session: %w", err)
	}
	return nil
}
