package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// commandNames are the recognized subcommands. Anything else is treated
// as an input path for an implicit convert.
var commandNames = map[string]bool{
	"convert":    true,
	"version":    true,
	"help":       true,
	"completion": true,
}

// isCommand reports whether arg names a subcommand (case sensitive).
func isCommand(arg string) bool {
	return commandNames[arg]
}

// runMain dispatches to the requested command and returns an exit code.
func runMain(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	if !isCommand(args[0]) {
		// Implicit convert: `doc2tex report.docx -o out/` works without
		// the subcommand.
		return runConvertCommand(args, env)
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(env.Stdout, "doc2tex %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args[1:], env)
		return ExitSuccess
	case "completion":
		if err := runCompletion(args[1:], env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	default: // "convert"
		return runConvertCommand(args[1:], env)
	}
}

// runConvertCommand parses convert flags and executes the conversion
// under a signal-aware context.
func runConvertCommand(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		// pflag already printed usage for --help
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
