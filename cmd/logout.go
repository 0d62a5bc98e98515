package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "end the current session" }
func (*logoutCmd) Usage() string {
	return `tvb logout

  End the current session. Logging out twice is harmless.
`
}

func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := authProvider().SignOut(); err != nil {
		return fail("%v", err)
	}
	fmt.Println("Signed out.")
	return subcommands.ExitSuccess
}
