package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an expense" }
func (*deleteCmd) Usage() string {
	return `spend delete -id <id>

  Deletes the expense at the given ID. Every expense after it moves down by
  one position: run 'spend list' again before using another ID.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "ID of the expense, as shown by 'spend list'.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireFlags(f, "id"); err != nil {
		fmt.Fprintf(stderr, "Erro: Para deletar, forneça um ID válido (%v).\n", err)
		return subcommands.ExitUsageError
	}

	_, err := OpenStore().Delete(c.id)
	if errors.Is(err, expenses.ErrRecordNotFound) {
		fmt.Fprintf(stdout, "ID %d não encontrada.\n", c.id)
		return subcommands.ExitSuccess
	}
	if err != nil {
		return reportError(err)
	}

	fmt.Fprintf(stdout, "Despesa ID '%d' deletada com sucesso.\n", c.id)
	return subcommands.ExitSuccess
}
