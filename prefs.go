package travelbuddy

import "fmt"

// Theme is the light/dark display mode preference.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseTheme parses a stored theme value. Anything unknown is light.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeLight, fmt.Errorf("unknown theme: %q", s)
	}
}

// AccentColors are the supported accent color choices.
var AccentColors = []string{"blue", "rose", "emerald", "violet", "amber"}

// DefaultAccent is used when no accent was remembered or the remembered one
// is not a known choice.
const DefaultAccent = "blue"

// Preferences wraps the ancillary single-value keys: the last selected role,
// the theme mode and the accent color. Each is its own store key; reading a
// missing or malformed value falls back to its default.
type Preferences struct {
	store Store
}

func NewPreferences(store Store) *Preferences {
	return &Preferences{store: store}
}

// Role returns the last selected role, defaulting to user.
func (p *Preferences) Role() Role {
	var s string
	if ok, err := p.store.Load(KeyRole, &s); !ok || err != nil {
		return RoleUser
	}
	role, _ := ParseRole(s)
	return role
}

// SetRole remembers the last selected role.
func (p *Preferences) SetRole(r Role) error {
	return p.store.Save(KeyRole, r.String())
}

// Theme returns the remembered theme mode, defaulting to light.
func (p *Preferences) Theme() Theme {
	var s string
	if ok, err := p.store.Load(KeyTheme, &s); !ok || err != nil {
		return ThemeLight
	}
	theme, _ := ParseTheme(s)
	return theme
}

// SetTheme remembers the theme mode.
func (p *Preferences) SetTheme(t Theme) error {
	return p.store.Save(KeyTheme, t.String())
}

// Accent returns the remembered accent color, defaulting to blue.
func (p *Preferences) Accent() string {
	var s string
	if ok, err := p.store.Load(KeyAccent, &s); !ok || err != nil {
		return DefaultAccent
	}
	for _, c := range AccentColors {
		if c == s {
			return s
		}
	}
	return DefaultAccent
}

// SetAccent remembers the accent color choice.
func (p *Preferences) SetAccent(color string) error {
	for _, c := range AccentColors {
		if c == color {
			return p.store.Save(KeyAccent, color)
		}
	}
	return fmt.Errorf("unknown accent color %q, want one of %v", color, AccentColors)
}
