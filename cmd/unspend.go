package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type unspendCmd struct{}

func (*unspendCmd) Name() string     { return "unspend" }
func (*unspendCmd) Synopsis() string { return "remove an expense" }
func (*unspendCmd) Usage() string {
	return `tvb unspend <expense-id>

  Remove an expense from the budget. Removing an unknown id does nothing.
`
}

func (*unspendCmd) SetFlags(f *flag.FlagSet) {}

func (c *unspendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail("exactly one expense id is required")
	}
	ledger, err := openLedger()
	if err != nil {
		return fail("loading budget: %v", err)
	}
	if err := ledger.DeleteExpense(f.Arg(0)); err != nil {
		return fail("removing expense: %v", err)
	}
	fmt.Printf("Removed expense %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
