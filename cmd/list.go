package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all expenses with their ID" }
func (*listCmd) Usage() string {
	return `spend list

  Lists all expenses of the ledger with their ID. IDs are positions in the
  ledger: they change when an expense before them is deleted.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := OpenStore().List()
	if err != nil {
		return reportError(err)
	}
	if table.IsEmpty() {
		fmt.Fprintln(stdout, "Nenhuma despesa registrada.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Table(table))
	return subcommands.ExitSuccess
}
