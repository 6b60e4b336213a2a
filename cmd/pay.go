package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mdp/qrterminal/v3"
	pos "github.com/ts5538512-byte/tamil-new-web"
	"github.com/ts5538512-byte/tamil-new-web/renderer"
)

type payCmd struct {
	pa      string
	pn      string
	confirm bool
}

func (*payCmd) Name() string { return "pay" }
func (*payCmd) Synopsis() string {
	return "show the UPI payment QR code, and optionally record the sale"
}
func (*payCmd) Usage() string {
	return `tamilpos pay [-pa <address>] [-pn <name>] [-confirm]

  Shows the amount due and a QR code for the UPI payment request.
  With -confirm, records the sale in the ledger and empties the cart,
  once the customer has paid.

Usage Examples:
$ tamilpos pay
$ tamilpos pay -confirm
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pa, "pa", "", "Merchant UPI address (defaults to the built-in identity)")
	f.StringVar(&c.pn, "pn", "", "Merchant display name (defaults to the built-in identity)")
	f.BoolVar(&c.confirm, "confirm", false, "Record the sale and empty the cart")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := openTill()
	total := t.cart.Subtotal()

	merchant := pos.DefaultMerchant
	if c.pa != "" {
		merchant.PayeeAddress = c.pa
	}
	if c.pn != "" {
		merchant.PayeeName = c.pn
	}

	uri, err := pos.BuildPaymentURI(merchant, total)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PaymentMarkdown(total, uri))
	qrterminal.GenerateWithConfig(uri, qrterminal.Config{
		Level:     qrterminal.M,
		Writer:    os.Stdout,
		BlackChar: qrterminal.BLACK,
		WhiteChar: qrterminal.WHITE,
		QuietZone: 1,
	})

	if !c.confirm {
		return subcommands.ExitSuccess
	}

	// Clearing the cart is what closes the payment view.
	t.cart.OnChange(func() {
		if t.cart.Len() == 0 {
			fmt.Println("Payment view closed.")
		}
	})

	tx, err := t.ledger.Commit(t.cart.Lines(), total)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	t.cart.Clear()
	fmt.Printf("Recorded sale %s for %s.\n", tx.ID, tx.Total)
	return subcommands.ExitSuccess
}
