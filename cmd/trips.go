package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/travelbuddy/renderer"
	"github.com/google/subcommands"
)

// tripsCmd holds the flags for the 'trips' subcommand.
type tripsCmd struct {
	query   string
	refresh bool
	share   string
}

func (*tripsCmd) Name() string     { return "trips" }
func (*tripsCmd) Synopsis() string { return "list, search and share saved trips" }
func (*tripsCmd) Usage() string {
	return `tvb trips [-q <query>] [-refresh] [-share <id>]

  List saved trips, newest first. -q searches destinations, dates,
  itineraries and tips. -share prints a shareable text for one trip.
`
}

func (c *tripsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Search query")
	f.BoolVar(&c.refresh, "refresh", false, "Reload the collection from disk first")
	f.StringVar(&c.share, "share", "", "Print the share text of the trip with this id")
}

func (c *tripsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	collection := openTrips()

	if c.refresh {
		if err := collection.Refresh(ctx); err != nil {
			return fail("refreshing trips: %v", err)
		}
	}

	if c.share != "" {
		for _, trip := range collection.List() {
			if trip.ID == c.share {
				fmt.Println(trip.ShareText())
				return subcommands.ExitSuccess
			}
		}
		return fail("no trip %q", c.share)
	}

	trips := collection.List()
	if c.query != "" {
		trips = collection.Search(c.query)
	}
	printMarkdown(renderer.RenderTrips(trips, c.query))
	return subcommands.ExitSuccess
}
