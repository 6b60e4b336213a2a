package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	pos "github.com/ts5538512-byte/tamil-new-web"
)

type addItemCmd struct {
	name  string
	price string
	image string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add a new item to the menu" }
func (*addItemCmd) Usage() string {
	return `tamilpos add-item -name <name> -price <price> [-image <url>]

  Adds an item to the menu. The name must not be blank and the price
  must be a positive amount in rupees.

Usage Examples:
$ tamilpos add-item -name "Vadai" -price 15
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name")
	f.StringVar(&c.price, "price", "", "Item price in rupees")
	f.StringVar(&c.image, "image", "", "Optional image URL")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := pos.ParsePrice(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	t := openTill()
	t.renderMenuOnChange()
	item, err := t.catalog.Add(c.name, price, c.image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Printf("Added %q with id %s\n", item.Name, item.ID)
	return subcommands.ExitSuccess
}

type updateItemCmd struct {
	id    string
	name  string
	price string
	image string
}

func (*updateItemCmd) Name() string     { return "update-item" }
func (*updateItemCmd) Synopsis() string { return "overwrite an existing menu item" }
func (*updateItemCmd) Usage() string {
	return `tamilpos update-item -id <item-id> -name <name> -price <price> [-image <url>]

  Overwrites the name, price, and image of an existing item. The item
  keeps its id and its position in the menu.
`
}

func (c *updateItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the item to update")
	f.StringVar(&c.name, "name", "", "New item name")
	f.StringVar(&c.price, "price", "", "New item price in rupees")
	f.StringVar(&c.image, "image", "", "New image URL")
}

func (c *updateItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := pos.ParsePrice(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	t := openTill()
	t.renderMenuOnChange()
	if err := t.catalog.Update(c.id, c.name, price, c.image); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type removeItemCmd struct {
	id string
}

func (*removeItemCmd) Name() string     { return "remove-item" }
func (*removeItemCmd) Synopsis() string { return "remove an item from the menu" }
func (*removeItemCmd) Usage() string {
	return `tamilpos remove-item -id <item-id>

  Removes the item from the menu. Past sales and cart lines keep
  their own snapshot of the item and are not affected. Removing an
  unknown id does nothing.
`
}

func (c *removeItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the item to remove")
}

func (c *removeItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := openTill()
	t.renderMenuOnChange()
	t.catalog.Remove(c.id)
	return subcommands.ExitSuccess
}
