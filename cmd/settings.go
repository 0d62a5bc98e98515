package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/travelbuddy"
	"github.com/google/subcommands"
)

// settingsCmd holds the flags for the 'settings' subcommand.
type settingsCmd struct {
	theme  string
	accent string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change display preferences" }
func (*settingsCmd) Usage() string {
	return `tvb settings [-theme light|dark] [-accent <color>]

  Show the display preferences, optionally changing the theme or the
  accent color first.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "theme", "", "Theme to switch to (light, dark)")
	f.StringVar(&c.accent, "accent", "", "Accent color ("+strings.Join(travelbuddy.AccentColors, ", ")+")")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prefs := openPrefs()

	if c.theme != "" {
		theme, err := travelbuddy.ParseTheme(c.theme)
		if err != nil {
			return fail("%v", err)
		}
		if err := prefs.SetTheme(theme); err != nil {
			return fail("%v", err)
		}
	}
	if c.accent != "" {
		if err := prefs.SetAccent(c.accent); err != nil {
			return fail("%v", err)
		}
	}

	fmt.Printf("theme\t%s\naccent\t%s\nrole\t%s\n", prefs.Theme(), prefs.Accent(), prefs.Role())
	return subcommands.ExitSuccess
}
