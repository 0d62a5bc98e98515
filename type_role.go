package travelbuddy

import (
	"encoding/json"
	"fmt"
)

// Role defines what a signed-in user may see in the community view.
type Role int

const (
	// RoleUser sees their own membership card.
	RoleUser Role = iota
	// RoleAdmin sees and searches the whole registry.
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	default:
		return "user"
	}
}

// ParseRole parses a string into a Role. Anything that is not "admin" is a
// plain user.
func ParseRole(s string) (Role, error) {
	switch s {
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUser, fmt.Errorf("unknown role: %q", s)
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	// lenient: unknown roles degrade to user.
	parsed, _ := ParseRole(str)
	*r = parsed
	return nil
}
