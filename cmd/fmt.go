package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `spend fmt

  Validates and formats the ledger file. This command reads all expenses,
  fails if the file is not a valid ledger, and writes them back in the
  canonical CSV form: fixed header, minimal quoting and amounts without
  trailing zeros. Order and IDs are preserved.

Usage Examples:
# Formats the default ledger file.
$ spend fmt
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := OpenStore()
	fmt.Fprintf(stderr, "Formatting ledger %q...\n", s.Path())
	if err := s.Format(); err != nil {
		return reportError(err)
	}
	fmt.Fprintf(stderr, "✅ Successfully formatted ledger %q.\n", s.Path())
	return subcommands.ExitSuccess
}
