package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/travelbuddy/guide"
	"github.com/etnz/travelbuddy/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct {
	city    string
	country string
	save    bool
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "generate a travel guide for a destination" }
func (*planCmd) Usage() string {
	return `tvb plan -city <city> -country <country> [-save]

  Generate a complete travel guide: welcome message, weather, top
  attractions, a one day itinerary and local tips. Requires GEMINI_API_KEY.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.city, "city", "", "Destination city")
	f.StringVar(&c.country, "country", "", "Destination country")
	f.BoolVar(&c.save, "save", false, "Save the guide to the trip collection")
}

func (c *planCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.city == "" || c.country == "" {
		return fail("both -city and -country are required")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail("initializing Gemini's client: %v", err)
	}

	g, err := guide.NewGemini(client).Guide(ctx, c.city, c.country, *currencyFlag)
	if err != nil {
		return fail("%v", err)
	}

	printMarkdown(renderer.RenderGuide(g))

	if c.save {
		trip, err := openTrips().Save(*g)
		if err != nil {
			return fail("saving trip: %v", err)
		}
		fmt.Printf("Saved trip %s\n", trip.ID)
	}
	return subcommands.ExitSuccess
}
