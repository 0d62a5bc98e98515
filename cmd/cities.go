package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/travelbuddy/guide"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// citiesCmd holds the flags for the 'cities' subcommand.
type citiesCmd struct {
	country string
}

func (*citiesCmd) Name() string     { return "cities" }
func (*citiesCmd) Synopsis() string { return "suggest tourist cities for a country" }
func (*citiesCmd) Usage() string {
	return `tvb cities -country <country>

  Suggest popular destinations in a country. Prints nothing when no
  suggestion is available.
`
}

func (c *citiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "", "Country to suggest cities for")
}

func (c *citiesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.country == "" {
		return fail("-country is required")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail("initializing Gemini's client: %v", err)
	}

	cities, err := guide.NewGemini(client).Cities(ctx, c.country)
	if err != nil {
		return fail("%v", err)
	}
	for _, city := range cities {
		fmt.Println(city.Name)
	}
	return subcommands.ExitSuccess
}
