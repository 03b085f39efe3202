package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type addCmd struct {
	description string
	amount      amountFlag
	category    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append an expense to the ledger" }
func (*addCmd) Usage() string {
	return `spend add -description <text> -amount <decimal> -category <text>

  Appends an expense after the last one of the ledger. All flags are required.
  Amounts use a dot as decimal separator, negative amounts are accepted (refunds).

Usage Examples:
$ spend add -description Coffee -amount 4.50 -category Food
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "description", "", "Description of the expense.")
	f.Var(&c.amount, "amount", "Amount of the expense, like 4.50.")
	f.StringVar(&c.category, "category", "", "Category of the expense.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireFlags(f, "description", "amount", "category"); err != nil {
		fmt.Fprintf(stderr, "Erro: Para adicionar uma despesa, forneça a descrição, o valor e a categoria (%v).\n", err)
		return subcommands.ExitUsageError
	}

	e := expenses.Expense{
		Name:     c.description,
		Amount:   c.amount.amount,
		Category: c.category,
	}
	if _, err := OpenStore().Append(e); err != nil {
		return reportError(err)
	}

	fmt.Fprintf(stdout, "Despesa '%s' adicionada com sucesso.\n", e.Name)
	return subcommands.ExitSuccess
}
