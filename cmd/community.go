package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/travelbuddy"
	"github.com/etnz/travelbuddy/renderer"
	"github.com/google/subcommands"
)

// communityCmd holds the flags for the 'community' subcommand.
type communityCmd struct {
	query string
}

func (*communityCmd) Name() string     { return "community" }
func (*communityCmd) Synopsis() string { return "show the travel community" }
func (*communityCmd) Usage() string {
	return `tvb community [-q <query>]

  Show the community. Admins see every member, sorted by most recent
  login, and can search by name or email. Everyone else sees their own
  membership card.
`
}

func (c *communityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Search members by name or email (admin only)")
}

func (c *communityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	registry, err := openRegistry()
	if err != nil {
		return fail("loading registry: %v", err)
	}

	var viewer string
	if id, err := authProvider().Current(); err == nil {
		viewer = id.Email
	}
	admin := openPrefs().Role() == travelbuddy.RoleAdmin

	if c.query != "" {
		if !admin {
			return fail("only admins can search the community")
		}
		for _, u := range registry.Search(c.query) {
			fmt.Printf("%s\t%s\t%s\n", u.Name, u.Email, u.Role)
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderCommunity(registry, viewer, admin))
	return subcommands.ExitSuccess
}
