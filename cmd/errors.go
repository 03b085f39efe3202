package cmd

import (
	"errors"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

// reportError prints a single line describing a store failure and returns the
// matching exit status.
func reportError(err error) subcommands.ExitStatus {
	switch {
	case errors.Is(err, expenses.ErrStorageCorrupt):
		fmt.Fprintf(stderr, "Erro: o arquivo de despesas %q está corrompido: %v\n", *expensesFile, err)
	case errors.Is(err, expenses.ErrStorageUnreadable):
		fmt.Fprintf(stderr, "Erro: não foi possível ler o arquivo de despesas %q: %v\n", *expensesFile, err)
	case errors.Is(err, expenses.ErrStorageUnwritable):
		fmt.Fprintf(stderr, "Erro: não foi possível gravar o arquivo de despesas %q: %v\n", *expensesFile, err)
	default:
		fmt.Fprintf(stderr, "Erro: %v\n", err)
	}
	return subcommands.ExitFailure
}
