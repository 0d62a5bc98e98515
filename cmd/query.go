package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

// queryCmd holds the flags for the 'query' subcommand.
type queryCmd struct {
	key string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query a stored document with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `tvb query -k <key> <jsonpath>

  Query one of the stored documents (trips, budget, user_registry) with a
  JSONPath expression, for scripting.

Usage Examples:
$ tvb query -k trips '$[0].city'
$ tvb query -k budget '$.expenses[*].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "k", "trips", "Document key to query")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail("exactly one JSONPath expression is required")
	}
	path := f.Arg(0)

	var jobj any
	found, err := openStore().Load(c.key, &jobj)
	if err != nil {
		return fail("loading %q: %v", c.key, err)
	}
	if !found {
		return fail("no document %q", c.key)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return fail("evaluating %q: %v", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer,
	// or a single answer: keep the single one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return fail("encoding result: %v", err)
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
