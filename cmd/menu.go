package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ts5538512-byte/tamil-new-web/renderer"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "display the menu" }
func (*menuCmd) Usage() string {
	return `tamilpos menu

  Displays the menu in catalog order, with the item ids used by the
  other commands.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := openTill()
	printMarkdown(renderer.MenuMarkdown(t.catalog.Items()))
	return subcommands.ExitSuccess
}

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "populate an empty menu with the default items" }
func (*seedCmd) Usage() string {
	return `tamilpos seed

  Populates an empty menu with the built-in default items. A menu
  that already has items is left untouched, so re-running is safe.
`
}

func (*seedCmd) SetFlags(f *flag.FlagSet) {}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// openTill seeds as part of loading.
	t := openTill()
	fmt.Printf("Menu holds %d items.\n", t.catalog.Len())
	printMarkdown(renderer.MenuMarkdown(t.catalog.Items()))
	return subcommands.ExitSuccess
}
