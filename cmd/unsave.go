package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type unsaveCmd struct{}

func (*unsaveCmd) Name() string     { return "unsave" }
func (*unsaveCmd) Synopsis() string { return "remove a saved trip" }
func (*unsaveCmd) Usage() string {
	return `tvb unsave <trip-id>

  Remove a trip from the collection. Removing an unknown id does nothing.
`
}

func (*unsaveCmd) SetFlags(f *flag.FlagSet) {}

func (c *unsaveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail("exactly one trip id is required")
	}
	id := f.Arg(0)

	collection := openTrips()
	known := collection.Contains(id)
	if err := collection.Delete(id); err != nil {
		return fail("removing trip: %v", err)
	}
	if known {
		fmt.Printf("Removed trip %s\n", id)
	} else {
		fmt.Printf("No trip %s, nothing removed\n", id)
	}
	return subcommands.ExitSuccess
}
