package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/travelbuddy/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	set string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show the trip budget, or set its total" }
func (*budgetCmd) Usage() string {
	return `tvb budget [-set <amount>]

  Show the budget summary, the per-category breakdown and the expense
  list. With -set, change the total budget first.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Set the total budget to this amount")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		return fail("loading budget: %v", err)
	}

	if c.set != "" {
		amount, err := decimal.NewFromString(c.set)
		if err != nil {
			return fail("parsing amount %q: %v", c.set, err)
		}
		if err := ledger.SetBudget(amount); err != nil {
			return fail("%v", err)
		}
		fmt.Printf("Budget set to %s\n", c.set)
	}

	printMarkdown(renderer.RenderBudget(ledger, *currencyFlag))
	return subcommands.ExitSuccess
}
