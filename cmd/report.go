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

type reportCmd struct {
	month string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the monthly sales report" }
func (*reportCmd) Usage() string {
	return `tamilpos report [-m <YYYY-MM>]

  Displays the sales recorded in one calendar month, in local time,
  with the month's total. Defaults to the current month.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Report month in YYYY-MM form (defaults to the current month)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month := pos.ThisMonth()
	if c.month != "" {
		var err error
		month, err = pos.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	t := openTill()
	printMarkdown(renderer.ReportMarkdown(pos.MonthlyReport(t.ledger, month)))
	return subcommands.ExitSuccess
}
