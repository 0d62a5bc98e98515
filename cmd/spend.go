package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/travelbuddy"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// spendCmd holds the flags for the 'spend' subcommand.
type spendCmd struct {
	category    string
	amount      string
	description string
	date        string
}

func (*spendCmd) Name() string     { return "spend" }
func (*spendCmd) Synopsis() string { return "record an expense" }
func (*spendCmd) Usage() string {
	return `tvb spend -category <category> -amount <amount> -desc <description> [-d <date>]

  Record an expense against the budget. The amount must be positive and
  the description non empty. The date defaults to today.
`
}

func (c *spendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Expense category")
	f.StringVar(&c.amount, "amount", "", "Expense amount")
	f.StringVar(&c.description, "desc", "", "What the money was spent on")
	f.StringVar(&c.date, "d", "", "Expense date (YYYY-MM-DD), defaults to today")
}

func (c *spendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return fail("parsing amount %q: %v", c.amount, err)
	}

	on := travelbuddy.Today()
	if c.date != "" {
		on, err = travelbuddy.ParseDate(c.date)
		if err != nil {
			return fail("parsing date: %v", err)
		}
	}

	ledger, err := openLedger()
	if err != nil {
		return fail("loading budget: %v", err)
	}
	expense, err := ledger.AddExpense(c.category, amount, c.description, on)
	if err != nil {
		return fail("%v", err)
	}
	fmt.Printf("Recorded expense %s\n", expense.ID)

	if ledger.IsOverLimit() {
		fmt.Println("You are over budget.")
	} else if ledger.IsNearLimit() {
		fmt.Println("Heads up: you are close to your budget limit.")
	}
	return subcommands.ExitSuccess
}
