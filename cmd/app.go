// Package cmd implements the CLI application to manage an expense ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/expenses"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "expenses")
	c.Register(&listCmd{}, "expenses")
	c.Register(&updateCmd{}, "expenses")
	c.Register(&deleteCmd{}, "expenses")
	c.Register(&summaryCmd{}, "expenses")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var expensesFile = flag.String("file", expenses.DefaultFile, "Path to the ledger file (CSV format)")

// Verbose enables the log output.
var Verbose = flag.Bool("v", false, "Print internal logs to stderr")

// output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// OpenStore returns the store on the app ledger file.
func OpenStore() *expenses.Store {
	return expenses.NewStore(*expensesFile)
}

// printMarkdown prints md to stdout, styled for the terminal if stdout is one.
// When the output is redirected the raw markdown is printed, so that it can be
// processed by other tools.
func printMarkdown(md string) {
	f, ok := stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
