package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// summaryCmd prints the total of the ledger. It takes no flags.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the total of all expenses" }
func (*summaryCmd) Usage() string {
	return `spend summary

  Displays the sum of all expense amounts.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	total, err := OpenStore().Summary()
	if err != nil {
		return reportError(err)
	}
	fmt.Fprintf(stdout, "Total das despesas: %s\n", total)
	return subcommands.ExitSuccess
}
