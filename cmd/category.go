package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/travelbuddy"
	"github.com/google/subcommands"
)

// categoryCmd holds the flags for the 'category' subcommand.
type categoryCmd struct {
	add string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "list budget categories, or add one" }
func (*categoryCmd) Usage() string {
	return `tvb category [-add <name>]

  List the budget categories with their icon and color. With -add,
  append a new category; adding an existing one selects it unchanged.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Category to add")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openLedger()
	if err != nil {
		return fail("loading budget: %v", err)
	}

	if c.add != "" {
		name, err := ledger.AddCategory(c.add)
		if err != nil {
			return fail("%v", err)
		}
		fmt.Printf("Category %q is ready\n", name)
	}

	for _, name := range ledger.Categories() {
		fmt.Printf("%s\t%s\t%s\n", name, travelbuddy.IconFor(name), ledger.CategoryColor(name))
	}
	return subcommands.ExitSuccess
}
