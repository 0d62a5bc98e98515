package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/travelbuddy"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct {
	amount string
	from   string
	to     string
	list   bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `tvb convert -amount <amount> -from <code> -to <code>
tvb convert -list

  Convert an amount using the built-in USD-relative rate table, or list
  the supported currency codes.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount to convert")
	f.StringVar(&c.from, "from", "USD", "Source currency code")
	f.StringVar(&c.to, "to", "EUR", "Target currency code")
	f.BoolVar(&c.list, "list", false, "List supported currency codes")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		for _, code := range travelbuddy.Currencies() {
			fmt.Printf("%s\t%s\n", code, travelbuddy.CurrencySymbol(code))
		}
		return subcommands.ExitSuccess
	}

	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return fail("parsing amount %q: %v", c.amount, err)
	}
	converted := travelbuddy.Convert(amount, c.from, c.to)
	fmt.Printf("%s = %s\n",
		travelbuddy.FormatAmount(amount, c.from),
		travelbuddy.FormatAmount(converted, c.to))
	return subcommands.ExitSuccess
}
