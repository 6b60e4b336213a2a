// Package cmd implements the CLI application to run the till.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	pos "github.com/ts5538512-byte/tamil-new-web"
	"github.com/ts5538512-byte/tamil-new-web/renderer"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&menuCmd{}, "menu")
	c.Register(&seedCmd{}, "menu")
	c.Register(&addItemCmd{}, "menu")
	c.Register(&updateItemCmd{}, "menu")
	c.Register(&removeItemCmd{}, "menu")

	c.Register(&cartCmd{}, "billing")
	c.Register(&addCmd{}, "billing")
	c.Register(&qtyCmd{}, "billing")
	c.Register(&removeCmd{}, "billing")
	c.Register(&clearCmd{}, "billing")
	c.Register(&billCmd{}, "billing")
	c.Register(&payCmd{}, "billing")

	c.Register(&reportCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".tamilpos", "Path to the folder holding the till records")

// till bundles the three records loaded from one store.
type till struct {
	store   *pos.Store
	catalog *pos.Catalog
	cart    *pos.Cart
	ledger  *pos.Ledger
}

// openTill loads every record fail-soft and makes sure the menu is
// seeded, the same way the till initializes on screen.
func openTill() *till {
	store := pos.NewStore(*dataDir)
	t := &till{
		store:   store,
		catalog: pos.LoadCatalog(store),
		cart:    pos.LoadCart(store),
		ledger:  pos.LoadLedger(store),
	}
	t.catalog.EnsureSeeded()
	return t
}

// renderCartOnChange subscribes the cart view, so every mutation
// re-renders the cart exactly once it happened.
func (t *till) renderCartOnChange() {
	t.cart.OnChange(func() {
		printMarkdown(renderer.CartMarkdown(t.cart.Lines(), t.cart.Subtotal()))
	})
}

// renderMenuOnChange subscribes the menu view to catalog changes.
func (t *till) renderMenuOnChange() {
	t.catalog.OnChange(func() {
		printMarkdown(renderer.MenuMarkdown(t.catalog.Items()))
	})
}
