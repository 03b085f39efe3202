package cmd

import (
	"flag"

	"github.com/etnz/expenses/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// ledgerFiles predicts values of flags expecting a ledger file.
var ledgerFiles = predict.Files("*.csv")

// CompletionTree builds the shell completion description of all commands
// registered in c, and their flags.
func CompletionTree(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		switch cmd.Name() {
		case "topic":
			sub.Args = topicPredictor{}
		case "help":
			sub.Args = predict.Set(commandNames(c))
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// Complete runs the shell completion if the program has been invoked by the
// shell for it, in which case it exits. Otherwise it does nothing.
func Complete(name string, c *subcommands.Commander, global *flag.FlagSet) {
	complete.Complete(name, CompletionTree(c, global))
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			flags[f.Name] = ledgerFiles
		default:
			flags[f.Name] = predict.Nothing
		}
	})
	return flags
}

func commandNames(c *subcommands.Commander) []string {
	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		names = append(names, cmd.Name())
	})
	return names
}

// topicPredictor predicts documentation topic names.
type topicPredictor struct{}

func (topicPredictor) Predict(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return topics
}
