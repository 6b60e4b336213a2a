package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	pos "github.com/ts5538512-byte/tamil-new-web"
	"github.com/ts5538512-byte/tamil-new-web/renderer"
)

type cartCmd struct{}

func (*cartCmd) Name() string     { return "cart" }
func (*cartCmd) Synopsis() string { return "display the current cart and subtotal" }
func (*cartCmd) Usage() string {
	return `tamilpos cart

  Displays the current cart lines, in the order they were first
  added, with the subtotal.
`
}

func (*cartCmd) SetFlags(f *flag.FlagSet) {}

func (c *cartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := openTill()
	printMarkdown(renderer.CartMarkdown(t.cart.Lines(), t.cart.Subtotal()))
	return subcommands.ExitSuccess
}

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add one unit of a menu item to the cart" }
func (*addCmd) Usage() string {
	return `tamilpos add <item-id | name>

  Adds one unit of the item to the cart. An item already in the cart
  gains one more unit. The item can be picked by id or by name.

Usage Examples:
$ tamilpos add Idly
$ tamilpos add Idly
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected one item id or name")
		return subcommands.ExitUsageError
	}
	t := openTill()
	item := t.lookupItem(f.Arg(0))
	if item == nil {
		fmt.Fprintf(os.Stderr, "Error: no menu item %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	t.renderCartOnChange()
	t.cart.AddItem(*item)
	return subcommands.ExitSuccess
}

// lookupItem resolves a command argument to a menu item, by id first,
// then by name.
func (t *till) lookupItem(arg string) *pos.MenuItem {
	if item := t.catalog.Get(arg); item != nil {
		return item
	}
	return t.catalog.FindByName(arg)
}

type qtyCmd struct{}

func (*qtyCmd) Name() string     { return "qty" }
func (*qtyCmd) Synopsis() string { return "set the quantity of a cart line" }
func (*qtyCmd) Usage() string {
	return `tamilpos qty <item-id | name> <quantity>

  Sets the line's quantity exactly. Decimal input keeps its integer
  part. A quantity of 0, or anything non-numeric or negative, removes
  the line.
`
}

func (*qtyCmd) SetFlags(f *flag.FlagSet) {}

func (c *qtyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected an item and a quantity")
		return subcommands.ExitUsageError
	}
	t := openTill()
	item := t.lookupItem(f.Arg(0))
	if item == nil {
		fmt.Fprintf(os.Stderr, "Error: no menu item %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	t.renderCartOnChange()
	t.cart.SetQuantity(item.ID, pos.ParseQuantity(f.Arg(1)))
	return subcommands.ExitSuccess
}

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a line from the cart" }
func (*removeCmd) Usage() string {
	return `tamilpos remove <item-id | name>

  Removes the line from the cart, whatever its quantity.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected one item id or name")
		return subcommands.ExitUsageError
	}
	t := openTill()
	t.renderCartOnChange()
	if item := t.lookupItem(f.Arg(0)); item != nil {
		t.cart.RemoveItem(item.ID)
	} else {
		// the menu item may be long gone while its line remains
		t.cart.RemoveItem(f.Arg(0))
	}
	return subcommands.ExitSuccess
}

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "empty the cart" }
func (*clearCmd) Usage() string {
	return `tamilpos clear

  Empties the cart and abandons any pending payment.
`
}

func (*clearCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := openTill()
	t.renderCartOnChange()
	t.cart.Clear()
	return subcommands.ExitSuccess
}
