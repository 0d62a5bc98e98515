package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// useTempData points the global data directory at a fresh temp folder.
func useTempData(t *testing.T) {
	t.Helper()
	old := *dataDir
	*dataDir = t.TempDir()
	t.Cleanup(func() { *dataDir = old })
}

// run parses args for cmd and executes it.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing flags for %s: %v", cmd.Name(), err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestCommandMetadata(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Commands {
		if c.Name() == "" || c.Synopsis() == "" || c.Usage() == "" {
			t.Errorf("command %T has empty metadata", c)
		}
		if seen[c.Name()] {
			t.Errorf("duplicate command name %q", c.Name())
		}
		seen[c.Name()] = true
	}
}

func TestBudgetSetAndSpend(t *testing.T) {
	useTempData(t)

	if got := run(t, &budgetCmd{}, "-set", "1000"); got != subcommands.ExitSuccess {
		t.Fatalf("budget -set = %v", got)
	}
	if got := run(t, &spendCmd{}, "-category", "Food", "-amount", "45", "-desc", "group dinner"); got != subcommands.ExitSuccess {
		t.Fatalf("spend = %v", got)
	}

	ledger, err := openLedger()
	if err != nil {
		t.Fatal(err)
	}
	if !ledger.Budget().Equal(decimal.NewFromInt(1000)) {
		t.Errorf("budget = %s, want 1000", ledger.Budget())
	}
	if !ledger.TotalSpent().Equal(decimal.NewFromInt(45)) {
		t.Errorf("spent = %s, want 45", ledger.TotalSpent())
	}
}

func TestSpendRejectsBadAmount(t *testing.T) {
	useTempData(t)
	if got := run(t, &spendCmd{}, "-category", "Food", "-amount", "lots", "-desc", "x"); got != subcommands.ExitFailure {
		t.Errorf("spend with bad amount = %v, want failure", got)
	}
	if got := run(t, &spendCmd{}, "-category", "Food", "-amount", "-5", "-desc", "x"); got != subcommands.ExitFailure {
		t.Errorf("spend with negative amount = %v, want failure", got)
	}
}

func TestUnsaveUnknownIsHarmless(t *testing.T) {
	useTempData(t)
	if got := run(t, &unsaveCmd{}, "no-such-trip"); got != subcommands.ExitSuccess {
		t.Errorf("unsave unknown id = %v, want success", got)
	}
}

func TestConvertCmd(t *testing.T) {
	useTempData(t)
	if got := run(t, &convertCmd{}, "-amount", "100", "-from", "USD", "-to", "USD"); got != subcommands.ExitSuccess {
		t.Errorf("convert = %v", got)
	}
	if got := run(t, &convertCmd{}, "-list"); got != subcommands.ExitSuccess {
		t.Errorf("convert -list = %v", got)
	}
	if got := run(t, &convertCmd{}, "-amount", "abc"); got != subcommands.ExitFailure {
		t.Errorf("convert with bad amount = %v, want failure", got)
	}
}

func TestQueryCmd(t *testing.T) {
	useTempData(t)
	if got := run(t, &budgetCmd{}, "-set", "300"); got != subcommands.ExitSuccess {
		t.Fatal("seeding budget failed")
	}
	if got := run(t, &queryCmd{}, "-k", "budget", "$.budget"); got != subcommands.ExitSuccess {
		t.Errorf("query = %v, want success", got)
	}
	if got := run(t, &queryCmd{}, "-k", "nope", "$.budget"); got != subcommands.ExitFailure {
		t.Errorf("query unknown key = %v, want failure", got)
	}
}

func TestSettingsCmd(t *testing.T) {
	useTempData(t)
	if got := run(t, &settingsCmd{}, "-theme", "dark", "-accent", "rose"); got != subcommands.ExitSuccess {
		t.Fatalf("settings = %v", got)
	}
	if got := openPrefs().Accent(); got != "rose" {
		t.Errorf("accent = %q, want rose", got)
	}
	if got := run(t, &settingsCmd{}, "-accent", "plaid"); got != subcommands.ExitFailure {
		t.Errorf("settings with unknown accent = %v, want failure", got)
	}
}
