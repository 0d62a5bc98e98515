// Package cmd implements the CLI application to plan trips and track their
// budget.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/travelbuddy"
	"github.com/etnz/travelbuddy/auth"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&planCmd{},
	&citiesCmd{},
	&tripsCmd{},
	&unsaveCmd{},
	&budgetCmd{},
	&spendCmd{},
	&unspendCmd{},
	&categoryCmd{},
	&convertCmd{},
	&signupCmd{},
	&loginCmd{},
	&logoutCmd{},
	&whoamiCmd{},
	&communityCmd{},
	&settingsCmd{},
	&topicCmd{},
	&queryCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".travelbuddy", "Path to the data folder holding trips, budget and accounts")
var currencyFlag = flag.String("currency", "USD", "Preferred currency code for amounts")
var verbose = flag.Bool("v", false, "Print internal warnings")

// Verbose reports whether internal warnings should be printed.
func Verbose() bool { return *verbose }

// openStore returns the application document store.
func openStore() *travelbuddy.DirStore {
	return travelbuddy.NewDirStore(*dataDir)
}

// openTrips loads the saved trip collection.
func openTrips() *travelbuddy.TripCollection {
	return travelbuddy.NewTripCollection(openStore())
}

// openLedger loads the budget ledger.
func openLedger() (*travelbuddy.BudgetLedger, error) {
	return travelbuddy.NewBudgetLedger(openStore()), nil
}

// openRegistry loads the user registry.
func openRegistry() (*travelbuddy.UserRegistry, error) {
	return travelbuddy.NewUserRegistry(openStore()), nil
}

// openPrefs loads the local preferences.
func openPrefs() *travelbuddy.Preferences {
	return travelbuddy.NewPreferences(openStore())
}

// authProvider returns the local account provider, rooted next to the rest
// of the data.
func authProvider() auth.Provider {
	return auth.NewFileProvider(filepath.Join(*dataDir, "auth"))
}

// printMarkdown renders markdown to the terminal. When rendering fails the
// raw markdown is still printed.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
