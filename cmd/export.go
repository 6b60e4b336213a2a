package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	pos "github.com/ts5538512-byte/tamil-new-web"
)

type exportCmd struct {
	record string
	query  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "dump a persisted record as JSON" }
func (*exportCmd) Usage() string {
	return `tamilpos export [-r <record>] [-q <jsonpath>]

  Dumps one of the persisted records (menu, transactions, cart) as
  raw JSON, optionally narrowed with a JSONPath expression.

Usage Examples:
$ tamilpos export -r transactions
$ tamilpos export -r transactions -q "$..total"
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.record, "r", pos.RecordTransactions, "Record to export: menu, transactions, or cart")
	f.StringVar(&c.query, "q", "", "Optional JSONPath expression to apply")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch c.record {
	case pos.RecordMenu, pos.RecordTransactions, pos.RecordCart:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown record %q\n", c.record)
		return subcommands.ExitUsageError
	}

	store := pos.NewStore(*dataDir)
	data, err := store.Read(c.record)
	if err != nil {
		// an absent record is an empty one
		data = []byte("[]")
	}

	if c.query == "" {
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: record %q is not valid JSON: %v\n", c.record, err)
		return subcommands.ExitFailure
	}
	result, err := jsonpath.Get(c.query, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
