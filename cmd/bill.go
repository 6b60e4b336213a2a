package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ts5538512-byte/tamil-new-web/renderer"
)

type billCmd struct{}

func (*billCmd) Name() string     { return "bill" }
func (*billCmd) Synopsis() string { return "print the customer bill for the current cart" }
func (*billCmd) Usage() string {
	return `tamilpos bill

  Prints the customer bill: every cart line with its line total, and
  the bill total. An empty cart has no bill.
`
}

func (*billCmd) SetFlags(f *flag.FlagSet) {}

func (c *billCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := openTill()
	subtotal := t.cart.Subtotal()
	if !subtotal.IsPositive() {
		fmt.Fprintln(os.Stderr, "Nothing to bill: the cart is empty.")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BillMarkdown(t.cart.Lines(), subtotal))
	return subcommands.ExitSuccess
}
