package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/travelbuddy"
	"github.com/etnz/travelbuddy/auth"
	"github.com/google/subcommands"
)

// loginCmd holds the flags for the 'login' subcommand.
type loginCmd struct {
	email string
	role  string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in to an existing account" }
func (*loginCmd) Usage() string {
	return `tvb login -email <email>

  Sign in. The password is prompted for.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.role, "role", "user", "Role in the community (user, admin)")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	role, err := travelbuddy.ParseRole(c.role)
	if err != nil {
		return fail("%v", err)
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return fail("reading password: %v", err)
	}

	id, err := authProvider().SignIn(c.email, password)
	if err != nil {
		return fail("%s", auth.Message(err))
	}
	if err := recordLogin(id, role); err != nil {
		return fail("recording login: %v", err)
	}

	profile := travelbuddy.NewProfile(id.Name, id.Email, false, role)
	fmt.Printf("Welcome back, %s!\n", profile.Name)
	return subcommands.ExitSuccess
}
