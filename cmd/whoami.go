package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/travelbuddy"
	"github.com/etnz/travelbuddy/auth"
	"github.com/google/subcommands"
)

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the signed-in account" }
func (*whoamiCmd) Usage() string {
	return `tvb whoami

  Show the current identity and role.
`
}

func (*whoamiCmd) SetFlags(f *flag.FlagSet) {}

func (c *whoamiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := authProvider().Current()
	if errors.Is(err, auth.ErrNotSignedIn) {
		fmt.Println("Nobody is signed in.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		return fail("%v", err)
	}

	profile := travelbuddy.NewProfile(id.Name, id.Email, false, openPrefs().Role())
	fmt.Printf("%s <%s> (%s)\n", profile.Name, profile.Email, profile.Role)
	return subcommands.ExitSuccess
}
