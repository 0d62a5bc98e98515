package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/travelbuddy"
	"github.com/etnz/travelbuddy/auth"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// promptPassword reads a password without echoing it. When stdin is not a
// terminal it falls back to reading a line, so the commands stay scriptable.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		pass, err := term.ReadPassword(fd)
		return string(pass), err
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

// recordLogin notes a successful sign-in in the registry and remembers the
// role locally.
func recordLogin(id auth.Identity, role travelbuddy.Role) error {
	registry, err := openRegistry()
	if err != nil {
		return err
	}
	if err := registry.RecordLogin(id.Name, id.Email, role); err != nil {
		return err
	}
	return openPrefs().SetRole(role)
}

// signupCmd holds the flags for the 'signup' subcommand.
type signupCmd struct {
	name  string
	email string
	role  string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create an account and sign in" }
func (*signupCmd) Usage() string {
	return `tvb signup -name <name> -email <email>

  Create a local account. The password is prompted for and must be at
  least 6 characters.
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name")
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.role, "role", "user", "Role in the community (user, admin)")
}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	role, err := travelbuddy.ParseRole(c.role)
	if err != nil {
		return fail("%v", err)
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return fail("reading password: %v", err)
	}

	id, err := authProvider().SignUp(c.name, c.email, password)
	if err != nil {
		return fail("%s", auth.Message(err))
	}
	if err := recordLogin(id, role); err != nil {
		return fail("recording login: %v", err)
	}

	profile := travelbuddy.NewProfile(id.Name, id.Email, true, role)
	fmt.Printf("Welcome, %s! You are signed in as %s.\n", profile.Name, profile.Email)
	return subcommands.ExitSuccess
}
