package travelbuddy

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// RegistryUser is one record of the per-device user directory.
//
// Email and JoinedAt are immutable once set; Role and LastLogin are
// overwritten on every login.
type RegistryUser struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
	LastLogin time.Time `json:"lastLogin"`
}

// UserRegistry is the append/update-on-login directory of everyone who
// signed in on this device, keyed by email.
type UserRegistry struct {
	store Store
	users []RegistryUser

	now func() time.Time
}

// NewUserRegistry loads the registry from the store; a missing or unreadable
// document yields an empty registry.
func NewUserRegistry(store Store) *UserRegistry {
	r := &UserRegistry{store: store, now: time.Now}
	var users []RegistryUser
	if ok, err := r.store.Load(KeyRegistry, &users); ok && err == nil {
		r.users = users
	}
	return r
}

func (r *UserRegistry) persist() error {
	if err := r.store.Save(KeyRegistry, r.users); err != nil {
		return fmt.Errorf("could not persist user registry: %w", err)
	}
	return nil
}

// Len returns the number of known users.
func (r *UserRegistry) Len() int { return len(r.users) }

// RecordLogin upserts the record for the given email: a first login inserts
// a new record, any later one overwrites role and last-login in place,
// last-write-wins.
func (r *UserRegistry) RecordLogin(name, email string, role Role) error {
	now := r.now()
	i := slices.IndexFunc(r.users, func(u RegistryUser) bool { return u.Email == email })
	if i >= 0 {
		r.users[i].Role = role
		r.users[i].LastLogin = now
	} else {
		r.users = append(r.users, RegistryUser{
			Name:      name,
			Email:     email,
			Role:      role,
			JoinedAt:  now,
			LastLogin: now,
		})
	}
	return r.persist()
}

// List returns the registry, optionally sorted by last login, newest first.
// Without sorting the insertion order is preserved.
func (r *UserRegistry) List(sortedByLastLoginDesc bool) []RegistryUser {
	users := slices.Clone(r.users)
	if sortedByLastLoginDesc {
		slices.SortStableFunc(users, func(a, b RegistryUser) int {
			return b.LastLogin.Compare(a.LastLogin)
		})
	}
	return users
}

// Search returns the users whose name or email contains the query,
// case-insensitively.
func (r *UserRegistry) Search(query string) []RegistryUser {
	q := strings.ToLower(query)
	var matches []RegistryUser
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
			matches = append(matches, u)
		}
	}
	return matches
}
