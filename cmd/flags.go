package cmd

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/expenses"
)

// ErrMissingArgument is returned when a required flag was not set.
var ErrMissingArgument = errors.New("missing argument")

// amountFlag is a flag.Value for an expenses.Amount.
type amountFlag struct {
	amount expenses.Amount
}

func (a *amountFlag) String() string {
	if a == nil {
		return ""
	}
	return a.amount.Exact()
}

func (a *amountFlag) Set(s string) error {
	v, err := expenses.ParseAmount(s)
	if err != nil {
		return err
	}
	a.amount = v
	return nil
}

// requireFlags checks that all flags named have been set on the command line.
// A flag set to its zero value, like "-amount 0", counts as set.
func requireFlags(f *flag.FlagSet, names ...string) error {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	var missing []string
	for _, name := range names {
		if !set[name] {
			missing = append(missing, "-"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingArgument, strings.Join(missing, ", "))
	}
	return nil
}
