package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rskl/bankbook/cmd"
)

func main() {
	// Shell completion: when invoked by the shell's completion hook this
	// prints candidates and exits, otherwise it is a no-op.
	sub := make(map[string]*complete.Command, len(cmd.CommandNames()))
	for _, name := range cmd.CommandNames() {
		sub[name] = &complete.Command{Args: predict.Files("*")}
	}
	complete.Complete("bkb", &complete.Command{Sub: sub})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "help")
	commander.Register(subcommands.FlagsCommand(), "help")
	commander.Register(subcommands.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
