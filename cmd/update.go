package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type updateCmd struct {
	id       int
	newValue amountFlag
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change the amount of an expense" }
func (*updateCmd) Usage() string {
	return `spend update -id <id> -new_value <decimal>

  Replaces the amount of the expense at the given ID. Description and category
  are left unchanged. Use 'spend list' to find the ID.

Usage Examples:
$ spend update -id 0 -new_value 3.00
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "ID of the expense, as shown by 'spend list'.")
	f.Var(&c.newValue, "new_value", "New amount of the expense.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireFlags(f, "id", "new_value"); err != nil {
		fmt.Fprintf(stderr, "Erro: Para atualizar, forneça um ID e o novo valor (%v).\n", err)
		return subcommands.ExitUsageError
	}

	e, err := OpenStore().UpdateAmount(c.id, c.newValue.amount)
	if errors.Is(err, expenses.ErrRecordNotFound) {
		fmt.Fprintf(stdout, "Despesa ID '%d' não encontrada.\n", c.id)
		return subcommands.ExitSuccess
	}
	if err != nil {
		return reportError(err)
	}

	fmt.Fprintf(stdout, "Despesa ID '%d' atualizada para %s.\n", c.id, e.Amount)
	return subcommands.ExitSuccess
}
